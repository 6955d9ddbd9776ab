package uheader

type (
	Header struct {
		Tag             uint32       `json:"tag"`
		FileVersion     uint16       `json:"file_version"`
		LicenseeVersion uint16       `json:"licensee_version"`
		PackageFlags    uint32       `json:"package_flags"`
		NameCount       int32        `json:"name_count"`
		NameOffset      int32        `json:"name_offset"`
		ExportCount     int32        `json:"export_count"`
		ExportOffset    int32        `json:"export_offset"`
		ImportCount     int32        `json:"import_count"`
		ImportOffset    int32        `json:"import_offset"`
		HeritageCount   int32        `json:"heritage_count"`
		HeritageOffset  int32        `json:"heritage_offset"`
		GUID            []byte       `json:"guid"`
		Generations     []Generation `json:"generations"`
	}
	guidBlock struct {
		GUID            []byte `json:"guid"`
		GenerationCount int32  `json:"generation_count"`
	}
	Generation struct {
		ExportCount int32 `json:"export_count"`
		NameCount   int32 `json:"name_count"`
	}
)

const (
	Tag = uint32(0x9E2A83C1)
	// VersionGUID is the first file version that replaced the heritage table
	// with a GUID and a generation list.
	VersionGUID    = 68
	GUIDSize       = 16
	GenerationSize = 8
)
