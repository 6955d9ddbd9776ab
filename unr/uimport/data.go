package uimport

type (
	// Entry references an object defined in another package. Name fields are
	// indexes into the name table, Package is an object reference.
	Entry struct {
		ClassPackage int32 `json:"class_package"`
		ClassName    int32 `json:"class_name"`
		Package      int32 `json:"package"`
		ObjectName   int32 `json:"object_name"`
	}
)
