package unr

import (
	"l2lo/unr/uexport"
	"l2lo/unr/uheader"
	"l2lo/unr/uimport"
	"l2lo/unr/uname"
)

// EncodePackage lays out a package as header, export bodies, then the name,
// import and export tables. payloads[i] is the body of exports[i]; the serial
// size and offset of each export are overwritten to match.
func EncodePackage(
	fileVersion uint16,
	names []uname.Entry,
	imports []uimport.Entry,
	exports []uexport.Entry,
	payloads [][]byte,
) []byte {
	header := uheader.Header{
		Tag:          uheader.Tag,
		FileVersion:  fileVersion,
		NameCount:    int32(len(names)),
		ImportCount:  int32(len(imports)),
		ExportCount:  int32(len(exports)),
		Generations:  []uheader.Generation{{ExportCount: int32(len(exports)), NameCount: int32(len(names))}},
		PackageFlags: 0x1,
	}
	if fileVersion < uheader.VersionGUID {
		header.Generations = nil
	}

	offset := uheader.CalculateSize(header)
	body := make([]byte, 0)
	exportsCopy := make([]uexport.Entry, len(exports))
	copy(exportsCopy, exports)
	for i := range exportsCopy {
		exportsCopy[i].SerialSize = 0
		exportsCopy[i].SerialOffset = 0
		if i < len(payloads) && len(payloads[i]) > 0 {
			exportsCopy[i].SerialSize = int32(len(payloads[i]))
			exportsCopy[i].SerialOffset = int32(offset + len(body))
			body = append(body, payloads[i]...)
		}
	}

	namesBytes := uname.EncodeBlock(names)
	importsBytes := uimport.EncodeBlock(imports)
	exportsBytes := uexport.EncodeBlock(exportsCopy)

	header.NameOffset = int32(offset + len(body))
	header.ImportOffset = header.NameOffset + int32(len(namesBytes))
	header.ExportOffset = header.ImportOffset + int32(len(importsBytes))

	bs := make([]byte, 0, offset+len(body)+len(namesBytes)+len(importsBytes)+len(exportsBytes))
	bs = append(bs, uheader.Encode(header)...)
	bs = append(bs, body...)
	bs = append(bs, namesBytes...)
	bs = append(bs, importsBytes...)
	bs = append(bs, exportsBytes...)
	return bs
}
