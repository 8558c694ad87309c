// Command psktool inspects and edits PSK store snapshots written by psk.LRUStore.WriteTo.
//
// Usage:
//
//	psktool [-store file] list
//	psktool [-store file] remove <identity>...
//	psktool [-store file] purge
//
// If -store is not given, the path is read from ASYNCTLS_PSK_STORE.
// A .env file in the working directory is loaded first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/asynctls/asynctls/internal/protocol"
	"github.com/asynctls/asynctls/psk"

	"github.com/joho/godotenv"
)

// EnvStore is the environment variable holding the default snapshot path.
const EnvStore = "ASYNCTLS_PSK_STORE"

var errUsage = errors.New("usage: psktool [-store file] list | remove <identity>... | purge")

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, time.Now); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("psktool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("store", os.Getenv(EnvStore), "path of the PSK store snapshot")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if *path == "" {
		return fmt.Errorf("no store given: use -store or set %s", EnvStore)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	store, err := load(*path)
	if err != nil {
		return err
	}
	switch cmd := fs.Arg(0); cmd {
	case "list":
		if fs.NArg() != 1 {
			return errUsage
		}
		return list(out, store, now())
	case "remove":
		if fs.NArg() < 2 {
			return errUsage
		}
		for _, id := range fs.Args()[1:] {
			if !has(store, id) {
				return fmt.Errorf("no PSK for identity %q", id)
			}
			store.RemovePSK(id)
		}
		fmt.Fprintf(out, "removed %d PSK(s)\n", fs.NArg()-1)
		return save(*path, store)
	case "purge":
		if fs.NArg() != 1 {
			return errUsage
		}
		n := store.Purge()
		fmt.Fprintf(out, "purged %d expired PSK(s)\n", n)
		return save(*path, store)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// has also finds expired PSKs, which GetPSK doesn't return.
func has(store *psk.LRUStore, identity string) bool {
	var found bool
	store.Range(func(id string, _ *psk.CachedPSK) bool {
		found = id == identity
		return !found
	})
	return found
}

func load(path string) (*psk.LRUStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	store := psk.NewLRUStore(protocol.MaxSnapshotPSKs)
	if _, err := store.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return store, nil
}

// save atomically replaces the snapshot at path.
func save(path string, store *psk.LRUStore) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := store.WriteTo(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}

func list(out io.Writer, store *psk.LRUStore, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IDENTITY\tSERVER NAME\tALPN\tVERSION\tCIPHER SUITE\tEARLY DATA\tEXPIRES")
	store.Range(func(id string, p *psk.CachedPSK) bool {
		expires := "never"
		switch {
		case p.Expired(now):
			expires = "expired"
		case !p.TicketExpirationTime.IsZero():
			expires = p.TicketExpirationTime.Sub(now).Round(time.Second).String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%#04x\t%#04x\t%d\t%s\n",
			id, p.ServerName, p.ALPN, p.Version, p.CipherSuite, p.MaxEarlyDataSize, expires)
		return true
	})
	return w.Flush()
}
