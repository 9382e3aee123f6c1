package logfacade

import "fmt"

const (
	handleTagShift  = 56
	handleIndexMask = 1<<handleTagShift - 1

	sinkHandleTag   = 'S'
	loggerHandleTag = 'L'
)

// SinkHandle identifies one live sink wrapper. Zero means no sink.
type SinkHandle uint64

// LoggerHandle identifies one live logger wrapper. Zero means no logger.
type LoggerHandle uint64

// handleKind is implemented by both handle types so the registry can stamp
// and check the kind tag in the top byte.
type handleKind interface {
	~uint64
	kindTag() uint64
}

func (SinkHandle) kindTag() uint64   { return sinkHandleTag }
func (LoggerHandle) kindTag() uint64 { return loggerHandleTag }

func makeHandle[H handleKind](serial uint64) H {
	var zero H
	return H(zero.kindTag()<<handleTagShift | serial&handleIndexMask)
}

// hasKind reports whether h carries its own kind's tag and a non-zero serial.
func hasKind[H handleKind](h H) bool {
	return uint64(h)>>handleTagShift == h.kindTag() && uint64(h)&handleIndexMask != 0
}

func (h SinkHandle) String() string   { return fmt.Sprintf("sink#%d", uint64(h)&handleIndexMask) }
func (h LoggerHandle) String() string { return fmt.Sprintf("logger#%d", uint64(h)&handleIndexMask) }
