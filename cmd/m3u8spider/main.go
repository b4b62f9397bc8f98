package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/turtletowerz/m3u8spider/m3u8"
)

var source string

// printRefs prints the resolved references, falling back to the raw form
// for entries that could not be resolved.
func printRefs(resolved, raw []string) {
	for i, ref := range resolved {
		if ref == "" {
			ref = raw[i]
		}
		fmt.Println(ref)
	}
}

func runE(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading playlist: %w", err)
	}

	playlist := m3u8.New(string(data), source)
	if !playlist.IsValid() {
		return fmt.Errorf("not a valid m3u8 playlist")
	}

	if playlist.IsMaster() {
		fmt.Println("master playlist")
		printRefs(playlist.ResolvedVariants(), playlist.Variants())
		return nil
	}

	fmt.Println("media playlist")
	if duration := playlist.TargetDuration(); duration != "" {
		fmt.Printf("target duration: %s\n", duration)
	}
	if sequence := playlist.MediaSequence(); sequence != "" {
		fmt.Printf("media sequence: %s\n", sequence)
	}
	printRefs(playlist.ResolvedSegments(), playlist.Segments())
	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "m3u8spider [playlist file]",
		Short: "Classify an M3U8 playlist and print its resolved references",
		Long: `m3u8spider reads M3U8 playlist text from a file (or stdin when no file
or "-" is given), classifies it as a master or media playlist and prints
the nested playlist or segment references it contains, resolved against
the locator given with --source.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runE,
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "locator the playlist text was retrieved from, used to resolve relative references")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
