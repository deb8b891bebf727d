package ffi

// Device is an opened ALCdevice pointer.
type Device uintptr

// Context is an ALCcontext pointer.
type Context uintptr

// Buffer names an AL buffer object.
type Buffer uint32

// Source names an AL source object.
type Source uint32

// Enum is an AL or ALC enumeration value.
type Enum int32

// Buffer formats
const (
	FormatMono8    Enum = 0x1100
	FormatMono16   Enum = 0x1101
	FormatStereo8  Enum = 0x1102
	FormatStereo16 Enum = 0x1103
)

// Source parameters
const (
	Looping          Enum = 0x1007
	BufferParam      Enum = 0x1009
	SourceState      Enum = 0x1010
	BuffersQueued    Enum = 0x1015
	BuffersProcessed Enum = 0x1016
	SourceType       Enum = 0x1027
)

// Source states returned for SourceState
const (
	Initial Enum = 0x1011
	Playing Enum = 0x1012
	Paused  Enum = 0x1013
	Stopped Enum = 0x1014
)

// Context attribute keys for CreateContext
const (
	AttrFrequency Enum = 0x1007
	AttrRefresh   Enum = 0x1008
	AttrSync      Enum = 0x1009
)
