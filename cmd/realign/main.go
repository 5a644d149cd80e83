// Command realign re-aligns sentence pairs within bilingual document
// bundles whose line-level alignment has degraded.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
