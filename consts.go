package logfacade

const (
	emptyString = ""

	// PackedArgLimit is the number of arguments the compact type descriptor can
	// describe. Argument lists of this length or longer use the unpacked form.
	PackedArgLimit = 16

	// DefaultPattern is the line layout used when a logger is created without one.
	DefaultPattern = "[%Y-%m-%d %H:%M:%S.%e] [%n] [%l] %v"

	// JSONPattern makes a logger pass the raw zerolog JSON record to its sinks.
	JSONPattern = "json"

	defaultVarArgsCapacity = 10
	printfBufferSize       = 1024
	defaultQueueSize       = 8192
	tagBits                = 4
	tagMask                = 0xf

	loggerNameField = "logger"
)

const (
	errMsgNilConfig      = "Init config is nil."
	errMsgConfigInvalid  = "Init configuration is invalid."
	errMsgConfigMismatch = "Init called again with a different configuration; the first configuration stays in effect."
	errMsgParamsInvalid  = "Parameters are invalid."
	errMsgKeyExists      = "An entry with the same name or target already exists."
	errMsgNotFound       = "Handle does not refer to a live entry."
	errMsgNoSinks        = "None of the sink handles could be resolved."
	errMsgNilWriter      = "Writer is nil."
	errMsgPanic          = "Recovered from panic."
	errMsgDropped        = "Async queue full; records were discarded."
	errMsgSinkWrite      = "Sink write failed."
	errMsgSinkFlush      = "Sink flush failed."
	errMsgOpenFile       = "Failed to open log file."
)
