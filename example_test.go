// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bassosimone/dnslabel"
	"github.com/bassosimone/runtimex"
)

func Example_validateLabel() {
	label := runtimex.PanicOnError1(dnslabel.TryFromString("my-host"))
	fmt.Printf("%s %d\n", label, label.Len())

	_, err := dnslabel.TryFromString("-bad")
	fmt.Println(err)
	fmt.Println(errors.Is(err, dnslabel.ErrStrayHyphen))

	// Output:
	// my-host 7
	// labels cannot have a hyphen at their start or end
	// true
}

func Example_scanAndSplit() {
	input := []byte(strings.Repeat("a", 64))

	label, rest := dnslabel.ScanBytes(input, false, false)
	fmt.Println(label.Len(), len(rest))

	_, _, err := dnslabel.TryScanBytes(input, false, true)
	fmt.Println(err)

	_, _, err = dnslabel.TryScanBytes(nil, false, true)
	fmt.Println(err)

	// Output:
	// 63 1
	// length of the scanned label differs from its source
	// scanned the root label unexpectedly
}

func Example_caseInsensitive() {
	upper := dnslabel.FromString("ABC")
	lower := dnslabel.FromString("abc")
	fmt.Println(upper.Equal(lower), upper.Sum64() == lower.Sum64())
	fmt.Println(lower.Less(dnslabel.FromString("abd")))
	fmt.Println(dnslabel.FromString("ab").Less(lower))

	// Output:
	// true true
	// true
	// true
}

func Example_ownedLabel() {
	buf := []byte("Example")
	owned := dnslabel.FromBytes(buf).Owned()

	// the owned copy does not depend on buf anymore
	copy(buf, "XXXXXXX")

	seen := map[dnslabel.OwnedLabel]bool{owned.Key(): true}
	other := runtimex.PanicOnError1(dnslabel.ParseOwnedLabel("EXAMPLE"))
	fmt.Println(owned.String(), seen[other.Key()])

	// Output:
	// Example true
}

func Example_changeCase() {
	buf := []byte("My-Host")
	label := dnslabel.FromBytesMut(buf)
	label.ToLower()
	fmt.Println(string(buf))

	// Output:
	// my-host
}

func Example_parseName() {
	name := runtimex.PanicOnError1(dnslabel.ParseName("WWW.Example.com"))
	for _, label := range name {
		fmt.Println(label.String())
	}
	fmt.Println(name.Canonical())

	// Output:
	// WWW
	// Example
	// com
	// www.example.com.
}
