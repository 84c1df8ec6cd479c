package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hieple7985/hip-key/internal/dict"
	"github.com/hieple7985/hip-key/pkg/vietnamese"
)

func init() {
	dictCmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the candidate dictionary",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from a JSON or TSV file",
		Long: "Import words into the dictionary. JSON files must match the " +
			"word-list schema; anything else is read as TSV lines of " +
			"word, annotation, frequency. Existing words are updated in place.",
		Args: cobra.ExactArgs(1),
		Run:  runDictImport,
	}

	addCmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add or update a single word",
		Args:  cobra.ExactArgs(1),
		Run:   runDictAdd,
	}
	addCmd.Flags().StringP("annotation", "a", "", "Gloss shown beside the candidate")
	addCmd.Flags().Int64P("freq", "f", 0, "Frequency rank (higher sorts first)")

	lookupCmd := &cobra.Command{
		Use:   "lookup <prefix>",
		Short: "List candidates for a prefix",
		Args:  cobra.ExactArgs(1),
		Run:   runDictLookup,
	}
	lookupCmd.Flags().IntP("limit", "l", vietnamese.DefaultCandidateLimit, "Max results")

	rmCmd := &cobra.Command{
		Use:   "rm <word>",
		Short: "Remove a word",
		Args:  cobra.ExactArgs(1),
		Run:   runDictRm,
	}

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count dictionary words",
		Run:   runDictCount,
	}

	dictCmd.AddCommand(importCmd, addCmd, lookupCmd, rmCmd, countCmd)
	RootCmd.AddCommand(dictCmd)
}

func runDictImport(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openDict(cfg)
	defer s.Close()

	n, err := s.ImportFile(args[0])
	if err != nil {
		exitErr("import", err)
	}
	fmt.Printf("imported %d words\n", n)
}

func runDictAdd(cmd *cobra.Command, args []string) {
	annotation, _ := cmd.Flags().GetString("annotation")
	freq, _ := cmd.Flags().GetInt64("freq")

	cfg := loadConfig()
	s := openDict(cfg)
	defer s.Close()

	entry, err := s.Add(args[0], annotation, freq)
	if err != nil {
		exitErr("add", err)
	}
	fmt.Printf("added %q (freq %d)\n", entry.Word, entry.Freq)
}

func runDictLookup(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := loadConfig()
	s := openDict(cfg)
	defer s.Close()

	candidates, err := s.Lookup(args[0], limit)
	if err != nil {
		exitErr("lookup", err)
	}
	if len(candidates) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, c := range candidates {
		if c.Annotation != "" {
			fmt.Printf("%s\t%.2f\t%s\n", c.Text, c.Confidence, c.Annotation)
		} else {
			fmt.Printf("%s\t%.2f\n", c.Text, c.Confidence)
		}
	}
}

func runDictRm(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openDict(cfg)
	defer s.Close()

	if err := s.Delete(args[0]); err != nil {
		if errors.Is(err, dict.ErrNotFound) {
			exitErr("rm", fmt.Errorf("%q is not in the dictionary", args[0]))
		}
		exitErr("rm", err)
	}
	fmt.Printf("removed %q\n", args[0])
}

func runDictCount(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openDict(cfg)
	defer s.Close()

	n, err := s.Count()
	if err != nil {
		exitErr("count", err)
	}
	fmt.Println(n)
}
