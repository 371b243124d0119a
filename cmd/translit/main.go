// Command translit converts Latin keyboard input into native-script text.
//
//	translit convert -l greek "logos "
//	echo "shalom " | translit convert -l hebrew
//	translit languages
//	translit rules beta
//	translit complete greek p
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
