package calendars

import (
	"sort"
	"strconv"
	"strings"
)

// splitGroup parses "<major>.<minor>" into its numeric parts. Malformed
// tokens collapse to zeros so they cluster at the front deterministically
// instead of breaking the sort.
func splitGroup(group string) (major, minor int) {
	majorToken, minorToken, _ := strings.Cut(group, ".")
	major, _ = strconv.Atoi(majorToken)
	minor, _ = strconv.Atoi(minorToken)
	return major, minor
}

// sortGroupsNaturally orders group identifiers by (major, minor) numeric
// pairs, so "10.1" sorts after "2.2" instead of between "1.x" and "2.x" as
// plain string comparison would put it.
func sortGroupsNaturally(groups []string) {
	sort.Slice(groups, func(i, j int) bool {
		iMajor, iMinor := splitGroup(groups[i])
		jMajor, jMinor := splitGroup(groups[j])
		if iMajor != jMajor {
			return iMajor < jMajor
		}
		if iMinor != jMinor {
			return iMinor < jMinor
		}
		return groups[i] < groups[j]
	})
}
