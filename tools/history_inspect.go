package main

import (
	"coffee-chat/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	showPairs := flag.Bool("pairs", false, "Print every pair of each round")
	flag.Parse()
	if *dbPath == "" {
		log.Fatal("No database path: use -db or BADGER_FILEPATH")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Executed at", "Pairs", "Excluded", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rounds, malformed := 0, 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(repositories.RoundPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				record, err := repositories.DecodeRound(v)
				if err != nil {
					malformed++
					table.Append([]string{key, "-", "-", "-", color.Red.Sprintf("malformed: %v", err)})
					return nil
				}
				rounds++

				excluded := "-"
				if record.HasExcluded() {
					excluded = color.Yellow.Sprint(record.Excluded)
				}
				detail := ""
				if *showPairs {
					pairs := make([]string, 0, len(record.Pairs))
					for _, p := range record.Pairs {
						pairs = append(pairs, p.String())
					}
					detail = strings.Join(pairs, " ")
				}
				table.Append([]string{
					key,
					record.ExecutedAt.Format("2006-01-02 15:04"),
					strconv.Itoa(record.PairCount),
					excluded,
					detail,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Printf("\n%d rounds", rounds)
	if malformed > 0 {
		color.Red.Printf(", %d malformed", malformed)
	}
	fmt.Println()
}
