package uheader

import (
	"l2lo/unr/ubytes"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, CalculateSize(header))
	bs = append(bs, ubytes.EncodeValueInt(header.Tag)...)
	bs = append(bs, ubytes.EncodeValueUInt16(header.FileVersion)...)
	bs = append(bs, ubytes.EncodeValueUInt16(header.LicenseeVersion)...)
	bs = append(bs, ubytes.EncodeValueInt(header.PackageFlags)...)
	bs = append(bs, ubytes.EncodeValueInt(header.NameCount)...)
	bs = append(bs, ubytes.EncodeValueInt(header.NameOffset)...)
	bs = append(bs, ubytes.EncodeValueInt(header.ExportCount)...)
	bs = append(bs, ubytes.EncodeValueInt(header.ExportOffset)...)
	bs = append(bs, ubytes.EncodeValueInt(header.ImportCount)...)
	bs = append(bs, ubytes.EncodeValueInt(header.ImportOffset)...)
	if header.FileVersion < VersionGUID {
		bs = append(bs, ubytes.EncodeValueInt(header.HeritageCount)...)
		bs = append(bs, ubytes.EncodeValueInt(header.HeritageOffset)...)
		return bs
	}
	guid := header.GUID
	if len(guid) != GUIDSize {
		guid = ubytes.CreateZeroBytes(GUIDSize)
	}
	bs = append(bs, guid...)
	bs = append(bs, ubytes.EncodeValueInt(len(header.Generations))...)
	for _, generation := range header.Generations {
		bs = append(bs, ubytes.EncodeValueInt(generation.ExportCount)...)
		bs = append(bs, ubytes.EncodeValueInt(generation.NameCount)...)
	}
	return bs
}

func CalculateSize(header Header) int {
	fixed := 4 + 2 + 2 + 4 + 6*4
	if header.FileVersion < VersionGUID {
		return fixed + 2*4
	}
	return fixed + GUIDSize + 4 + GenerationSize*len(header.Generations)
}
