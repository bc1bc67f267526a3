package format

type (
	CompressionType uint8
	WriteMode       uint8
	Strategy        uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	ModeOverwrite WriteMode = 0x1 // ModeOverwrite truncates the target file before writing.
	ModeAppend    WriteMode = 0x2 // ModeAppend writes after the existing file contents.

	StrategyAuto     Strategy = 0x1 // StrategyAuto picks one-shot or chunked based on input length.
	StrategyWriteAll Strategy = 0x2 // StrategyWriteAll encodes the whole input in one shot.
	StrategyChunked  Strategy = 0x3 // StrategyChunked streams the input through fixed-size buffers.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (m WriteMode) String() string {
	switch m {
	case ModeOverwrite:
		return "Overwrite"
	case ModeAppend:
		return "Append"
	default:
		return "Unknown"
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "Auto"
	case StrategyWriteAll:
		return "WriteAll"
	case StrategyChunked:
		return "Chunked"
	default:
		return "Unknown"
	}
}
