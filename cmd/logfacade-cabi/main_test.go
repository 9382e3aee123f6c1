//go:build cgo

package main

import (
	"testing"

	"github.com/Station-Manager/logfacade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarArgs_NarrowAdders(t *testing.T) {
	h := LF_VarArgsNew()
	require.NotZero(t, uint64(h))
	defer LF_VarArgsFree(h)

	LF_VarArgsAddInt8(h, -3)
	LF_VarArgsAddInt16(h, 300)
	LF_VarArgsAddUint8(h, 7)
	LF_VarArgsAddUint16(h, 65000)
	LF_VarArgsAddUString(h, nil, 0)
	LF_VarArgsAddUStringZ(h, nil)

	assert.Equal(t, uint64(6), uint64(LF_VarArgsSize(h)))
	want := uint64(logfacade.TagInt) |
		uint64(logfacade.TagInt)<<4 |
		uint64(logfacade.TagUint)<<8 |
		uint64(logfacade.TagUint)<<12 |
		uint64(logfacade.TagString)<<16 |
		uint64(logfacade.TagString)<<20
	assert.Equal(t, want, uint64(LF_VarArgsCompressedType(h)))
}

func TestCallbackSinks_RejectNullCallback(t *testing.T) {
	require.Equal(t, uint32(logfacade.InitSucceeded), uint32(LF_Init(0, 0, 0, 0, nil)))
	defer LF_Free()

	assert.Zero(t, uint64(LF_CreateCallbackSink(nil, 1)))
	assert.Zero(t, uint64(LF_CreateCallbackLogger(nil, nil, 1, nil)))
	assert.Nil(t, writeCallback(nil))

	n, err := callbackWriter{}.Write([]byte("ignored"))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestLoggerGetters_DeadHandle(t *testing.T) {
	assert.Equal(t, uint32(logfacade.LevelOff), uint32(LF_GetLoggerAutoFlush(12345)))
	assert.Zero(t, int(LF_SetLoggerErrorHandler(12345, nil)))
}
