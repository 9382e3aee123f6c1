//go:build !nobitmask

package logfacade

const bitMaskFilterEnabled = true
