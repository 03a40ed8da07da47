// Where: cli/internal/domain/license/license.go
// What: Static list of licenses offered by the npm-package template.
// Why: Single source for prompt choices and license resource lookup.
package license

import "strings"

// License is a prompt choice: display name plus SPDX identifier.
type License struct {
	Name string
	ID   string
}

// DefaultID is preselected in the license prompt.
const DefaultID = "Apache-2.0"

var all = []License{
	{Name: "Apache License 2.0", ID: "Apache-2.0"},
	{Name: "MIT License", ID: "MIT"},
	{Name: "Universal Permissive License v1.0", ID: "UPL-1.0"},
	{Name: "Mozilla Public License 2.0", ID: "MPL-2.0"},
	{Name: `BSD 2-Clause "Simplified" License`, ID: "BSD-2-Clause"},
	{Name: `BSD 3-Clause "New" or "Revised" License`, ID: "BSD-3-Clause"},
	{Name: "Internet Systems Consortium (ISC) License", ID: "ISC"},
	{Name: "GNU Affero General Public License v3.0 or later", ID: "AGPL-3.0-or-later"},
	{Name: "GNU General Public License v3.0 or later", ID: "GPL-3.0-or-later"},
	{Name: "GNU Lesser General Public License v3.0 or later", ID: "LGPL-3.0-or-later"},
	{Name: "The Unlicense", ID: "Unlicense"},
	{Name: "SIL Open Font License 1.1", ID: "OFL-1.1"},
	{Name: "No License (Copyrighted)", ID: "UNLICENSED"},
}

// All returns a copy of the license list in display order.
func All() []License {
	out := make([]License, len(all))
	copy(out, all)
	return out
}

// Find looks up a license by identifier, ignoring case.
func Find(id string) (License, bool) {
	id = strings.TrimSpace(id)
	for _, l := range all {
		if strings.EqualFold(l.ID, id) {
			return l, true
		}
	}
	return License{}, false
}

// ResourcePath is the template-relative path of a license text.
func ResourcePath(id string) string {
	return "licenses/" + id + ".txt"
}
