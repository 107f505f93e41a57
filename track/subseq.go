package track

// containsSubsequence reports whether needle appears as a contiguous run
// inside haystack. Used by Disconnect to test whether a live slice's along
// path traverses a junction through the exact triple being severed.
func containsSubsequence(haystack, needle []string) bool {
	if len(needle) == 0 {
		return true
	}
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, v := range needle {
			if haystack[i+j] != v {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
