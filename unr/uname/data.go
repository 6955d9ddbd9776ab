package uname

type (
	Entry struct {
		Name  string `json:"name"`
		Flags int32  `json:"flags"`
	}
)
