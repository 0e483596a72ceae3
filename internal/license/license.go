// Package license holds the fixed GPL banner the -l/--license flag
// requests, reproduced verbatim from the original fftGen tool's
// licenseText so generated code carries the same notice wording.
package license

// Text is the banner written at the top of the generated code when
// requested. Presentation-only: the generator itself does not enforce
// or check any license terms.
const Text = `// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License as published by the Free Software
// Foundation; either version 3 of the license, or (at your option) any later
// version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.
//
// You should have received a copy of the GNU General Public License along with
// this program, see file COPYING. If not, see https://www.gnu.org/licenses/.
`
