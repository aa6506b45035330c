/*
Copyright © 2024 the MISR-HR authors.
This file is part of MISR-HR.

MISR-HR is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MISR-HR is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MISR-HR.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command misrhr is a command-line interface for MISR-HR processing
// utilities.
package main

import (
	"fmt"
	"os"

	"github.com/misrhr/misrhr/misrutil"
)

func main() {
	if err := misrutil.InitializeConfig().Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
