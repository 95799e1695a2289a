package system

import "fmt"

// reserveUniqueName implements spec.md §3's unique-name rule (ported
// from Hopsan++'s CoreUtilities/FindUniqueName.h): strip any existing
// trailing "_<digits>" suffix from want, then try want, want_1, want_2,
// ... until one is not already in taken. The chosen name is reserved in
// taken before returning.
func reserveUniqueName(taken map[string]struct{}, want string) string {
	base := stripNumericSuffix(want)
	name := base
	if _, exists := taken[name]; !exists {
		taken[name] = struct{}{}
		return name
	}
	for k := 1; ; k++ {
		candidate := fmt.Sprintf("%s_%d", base, k)
		if _, exists := taken[candidate]; !exists {
			taken[candidate] = struct{}{}
			return candidate
		}
	}
}

// stripNumericSuffix removes a trailing "_<digits>" suffix from name, if
// present, so repeated uniqueification does not accumulate "_1_1_1".
func stripNumericSuffix(name string) string {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) || i == 0 || name[i-1] != '_' {
		return name
	}
	return name[:i-1]
}
