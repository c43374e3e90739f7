package platform

// ArchVariant is an x86_64 instruction-set tier. Higher tiers require strictly more CPU
// extensions. The zero value means no variant.
type ArchVariant uint8

const (
	// VariantV2 targets CPUs newer than Nehalem (2008), adding SSE3 and SSE4.
	VariantV2 ArchVariant = iota + 1
	// VariantV3 targets CPUs newer than Haswell (2013) and Excavator (2015), adding AVX, AVX2 and MOVBE.
	VariantV3
	// VariantV4 targets CPUs with AVX-512. Many post-2017 Intel CPUs lack it.
	VariantV4
)

// ParseArchVariant parses "v2", "v3" or "v4". It reports false for anything else.
func ParseArchVariant(s string) (ArchVariant, bool) {
	switch s {
	case "v2":
		return VariantV2, true
	case "v3":
		return VariantV3, true
	case "v4":
		return VariantV4, true
	default:
		return 0, false
	}
}

// String returns the variant suffix without the leading underscore.
func (v ArchVariant) String() string {
	switch v {
	case VariantV2:
		return "v2"
	case VariantV3:
		return "v3"
	case VariantV4:
		return "v4"
	default:
		return ""
	}
}
