package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scandir-io/scandir/cmd"
	"github.com/scandir-io/scandir/pkg/filesystem"
	"github.com/scandir-io/scandir/pkg/logging"
)

// entryRecord is the YAML encoding shape for a single directory entry.
type entryRecord struct {
	Name     string          `yaml:"name"`
	Kind     string          `yaml:"kind"`
	Metadata *metadataRecord `yaml:"metadata,omitempty"`
}

// metadataRecord is the YAML encoding shape for an entry's metadata.
type metadataRecord struct {
	Device           uint64 `yaml:"device"`
	Mode             string `yaml:"mode"`
	Links            uint64 `yaml:"links"`
	Size             int64  `yaml:"size"`
	ModificationTime int64  `yaml:"modificationTime"`
	ChangeTime       int64  `yaml:"changeTime"`
}

// colorizeEntryName renders an entry name with a kind-dependent color.
func colorizeEntryName(entry filesystem.Entry) string {
	switch entry.Kind {
	case filesystem.KindDirectory:
		return color.BlueString("%s", entry.Name)
	case filesystem.KindSymbolicLink:
		return color.CyanString("%s", entry.Name)
	case filesystem.KindBlockDevice, filesystem.KindCharacterDevice:
		return color.YellowString("%s", entry.Name)
	case filesystem.KindFIFO, filesystem.KindSocket:
		return color.MagentaString("%s", entry.Name)
	default:
		return entry.Name
	}
}

// printEntriesText writes the listing in the default human-readable format.
func printEntriesText(entries []filesystem.Entry) {
	for _, entry := range entries {
		if entry.Metadata != nil {
			fmt.Printf(
				"%06o %4d %10s %s %s\n",
				entry.Metadata.Mode,
				entry.Metadata.Links,
				humanize.Bytes(uint64(entry.Metadata.Size)),
				time.Unix(entry.Metadata.ModificationTime, 0).Format("2006-01-02 15:04:05"),
				colorizeEntryName(entry),
			)
		} else {
			fmt.Printf("%-16s %s\n", entry.Kind, colorizeEntryName(entry))
		}
	}
}

// printEntriesYAML writes the listing as a YAML document on standard output.
func printEntriesYAML(entries []filesystem.Entry) error {
	// Convert entries to their encoding shape.
	records := make([]entryRecord, 0, len(entries))
	for _, entry := range entries {
		record := entryRecord{
			Name: entry.Name,
			Kind: entry.Kind.String(),
		}
		if entry.Metadata != nil {
			record.Metadata = &metadataRecord{
				Device:           entry.Metadata.Device,
				Mode:             fmt.Sprintf("%06o", entry.Metadata.Mode),
				Links:            entry.Metadata.Links,
				Size:             entry.Metadata.Size,
				ModificationTime: entry.Metadata.ModificationTime,
				ChangeTime:       entry.Metadata.ChangeTime,
			}
		}
		records = append(records, record)
	}

	// Perform encoding.
	encoder := yaml.NewEncoder(os.Stdout)
	if err := encoder.Encode(records); err != nil {
		return errors.Wrap(err, "unable to encode entries")
	}
	return errors.Wrap(encoder.Close(), "unable to finalize encoding")
}

// listMain is the entry point for the list command.
func listMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("exactly one directory path must be specified")
	}
	path := arguments[0]

	// Validate the log level and create a logger targeting standard error.
	level, ok := logging.NameToLevel(listConfiguration.logLevel)
	if !ok {
		return errors.Errorf("invalid log level: %s", listConfiguration.logLevel)
	}
	logger := logging.NewLogger(level, os.Stderr)

	// Validate formatting flags and apply the color preference.
	if err := listConfiguration.format.validate(); err != nil {
		return err
	}

	// Perform the scan. Metadata is only requested for long listings.
	listing, err := filesystem.Scan(path, listConfiguration.long, listConfiguration.skip)
	if err != nil {
		return errors.Wrap(err, "unable to scan directory")
	}

	// Handle the skip-triggered early exit. This is a deliberate signal, not
	// an error, so nothing is listed.
	if listing.Aborted {
		logger.Infof("Skip marker '%s' encountered, nothing listed", listConfiguration.skip)
		return nil
	}

	// Print the listing.
	if listConfiguration.format.format == formatYAML {
		return printEntriesYAML(listing.Entries)
	}
	printEntriesText(listing.Entries)

	// Success.
	return nil
}

// listCommand is the list command.
var listCommand = &cobra.Command{
	Use:   "list <path>",
	Short: "List the entries of a directory",
	Run:   cmd.Mainify(listMain),
}

// listConfiguration stores configuration for the list command.
var listConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// long indicates whether or not entries should carry full metadata
	// records.
	long bool
	// skip is the directory name that aborts the scan when encountered.
	skip string
	// format stores output formatting flags.
	format formatFlags
	// logLevel stores the value of the --log-level flag.
	logLevel string
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")

	// Wire up list command flags.
	flags.BoolVarP(&listConfiguration.long, "long", "l", false, "Include full metadata for each entry")
	flags.StringVar(&listConfiguration.skip, "skip", "", "Abort the scan if a directory with this name is encountered")
	listConfiguration.format.register(flags)
	flags.StringVar(&listConfiguration.logLevel, "log-level", "warn", "Set the log level (disabled|error|warn|info|debug)")
}
