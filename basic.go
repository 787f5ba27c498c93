package megahal

// Basic types and constants shared across the package.

// SymbolId is a dictionary-assigned id for a case-folded word. Ids are
// 16 bits wide, matching the on-disk format and the original
// implementation's uint16_t symbol type.
type SymbolId uint16

// The two sentinel symbols every Dictionary is constructed with.
const (
	SymbolError SymbolId = 0 // unknown word / lookup miss
	SymbolFin   SymbolId = 1 // sentence terminator
)

const (
	symbolErrorWord = "<ERROR>"
	symbolFinWord   = "<FIN>"
)

// MaxWordLen is the largest representable word length: the on-disk
// format stores a word's length in a single byte.
const MaxWordLen = 255

// MaxDictionarySize is the largest number of distinct words a
// Dictionary can hold; SymbolId is 16 bits wide.
const MaxDictionarySize = 1 << 16

// DefaultOrder is the Markov order used when none is given, matching
// the original implementation's default.
const DefaultOrder = 5

// MinOrder and MaxOrder bound the Markov order accepted by NewModel
// and enforced on Load.
const (
	MinOrder = 1
	MaxOrder = 15
)

// DefaultTimeout is the wall-clock budget, in seconds, Reply spends
// hunting for the best candidate.
const DefaultTimeout = 1.0

// brainMagic is the 9-byte cookie at the start of every .brn file.
const brainMagic = "MegaHALv8"

// maxTreeDepth bounds recursion when reading a persisted tree so an
// adversarial file cannot exhaust the stack.
const maxTreeDepth = 1024
