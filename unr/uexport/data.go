package uexport

type (
	// Entry describes an object serialised inside the package. Class, Super and
	// Package are object references; ObjectName indexes the name table.
	Entry struct {
		Class        int32  `json:"class"`
		Super        int32  `json:"super"`
		Package      int32  `json:"package"`
		ObjectName   int32  `json:"object_name"`
		ObjectFlags  uint32 `json:"object_flags"`
		SerialSize   int32  `json:"serial_size"`
		SerialOffset int32  `json:"serial_offset"`
	}
)
