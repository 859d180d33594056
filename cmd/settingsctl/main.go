// Command settingsctl reads and writes settings stored in a settingskey YAML
// file, in the manner of defaults(1).
package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"

	"code.byted.org/khicago/settingskey"
)

const usage = `usage: settingsctl [flags] <command> [args]

commands:
  read <name> [kind]            print a value, coerced to kind if given
  write <name> <kind> <value>   store a value of kind
  delete <name>                 remove a value
  list [pattern]                list values whose names match pattern

kinds: bool int float double string date data url json
  date values are RFC 3339, data values are base64

flags:
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("settingsctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("file", defaultPath(), "settings file")
	suite := fs.String("suite", "default", "settings suite")
	verbose := fs.Bool("v", false, "log store activity")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "settingsctl: %v\n", err)
			return 1
		}
		logger = l
	}
	defer logger.Sync()

	if err := os.MkdirAll(filepath.Dir(*path), 0o755); err != nil {
		fmt.Fprintf(stderr, "settingsctl: %v\n", err)
		return 1
	}
	driver, err := settingskey.OpenFile(*path)
	if err != nil {
		fmt.Fprintf(stderr, "settingsctl: %v\n", err)
		return 1
	}
	logger.Debug("opened settings", zap.String("file", *path), zap.String("suite", *suite))

	store := settingskey.New(*suite,
		settingskey.WithDriver(driver),
		settingskey.WithZap(logger),
		settingskey.WithLogTag("[settingsctl]"))

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "read":
		err = read(store, stdout, rest)
	case "write":
		err = write(store, rest)
	case "delete":
		err = remove(store, rest)
	case "list":
		err = list(store, stdout, rest)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	if err != nil {
		fmt.Fprintf(stderr, "settingsctl: %v\n", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}
	return 0
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "settingsctl", "settings.yaml")
}

func read(store *settingskey.Defaults, w io.Writer, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: read takes a name and an optional kind", errUsage)
	}
	name := settingskey.KeyName(args[0])

	if len(args) == 1 {
		v := store.Object(name.Name())
		if v == nil {
			return fmt.Errorf("%s: %w", name, settingskey.ErrNotFound)
		}
		_, text := describe(v)
		fmt.Fprintln(w, text)
		return nil
	}

	switch kind := args[1]; kind {
	case "bool":
		fmt.Fprintln(w, settingskey.Get(store, settingskey.CoercingBool(name)))
	case "int":
		fmt.Fprintln(w, settingskey.Get(store, settingskey.CoercingInteger(name)))
	case "float":
		fmt.Fprintln(w, settingskey.Get(store, settingskey.CoercingFloat(name)))
	case "double":
		fmt.Fprintln(w, settingskey.Get(store, settingskey.CoercingDouble(name)))
	case "string":
		s := settingskey.Get(store, settingskey.CoercingString(name))
		if s == nil {
			return fmt.Errorf("%s: %w", name, settingskey.ErrNotFound)
		}
		fmt.Fprintln(w, *s)
	case "url":
		u := settingskey.Get(store, settingskey.CoercingURL(name))
		if u == nil {
			return fmt.Errorf("%s: %w", name, settingskey.ErrNotFound)
		}
		fmt.Fprintln(w, u)
	case "json":
		v, err := settingskey.Read(store, settingskey.JSONCoded[any](name))
		if err != nil {
			return err
		}
		if v == nil {
			return fmt.Errorf("%s: %w", name, settingskey.ErrNotFound)
		}
		out, err := json.Marshal(*v)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
	default:
		return fmt.Errorf("%w: cannot read as %q", errUsage, kind)
	}
	return nil
}

func write(store *settingskey.Defaults, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: write takes a name, a kind and a value", errUsage)
	}
	name, kind, raw := settingskey.KeyName(args[0]), args[1], args[2]

	switch kind {
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		settingskey.Set(store, settingskey.Bool(name), &b)
	case "int":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		settingskey.Set(store, settingskey.Integer(name), &n)
	case "float":
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		settingskey.Set(store, settingskey.Float(name), settingskey.Ptr(float32(f)))
	case "double":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		settingskey.Set(store, settingskey.Double(name), &f)
	case "string":
		settingskey.Set(store, settingskey.String(name), &raw)
	case "date":
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		settingskey.Set(store, settingskey.Date(name), &t)
	case "data":
		b, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		settingskey.Set(store, settingskey.Data(name), &b)
	case "url":
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		settingskey.Set(store, settingskey.CoercingURL(name), u)
	case "json":
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return settingskey.Write(store, settingskey.JSONCoded[any](name), &v)
	default:
		return fmt.Errorf("%w: cannot write kind %q", errUsage, kind)
	}
	return nil
}

func remove(store *settingskey.Defaults, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete takes a name", errUsage)
	}
	store.Remove(args[0])
	return nil
}

func list(store *settingskey.Defaults, w io.Writer, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: list takes an optional pattern", errUsage)
	}
	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}

	names, err := store.Names(pattern)
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"Name", "Kind", "Value"})
	for _, name := range names {
		kind, text := describe(store.Object(name))
		tbl.AppendRow(table.Row{name, kind, fmt.Sprintf("%.60s", text)})
	}
	tbl.SetStyle(table.StyleLight)
	tbl.Render()
	return nil
}

// describe names the kind of a stored value and formats it the way write
// accepts it.
func describe(v any) (kind, text string) {
	switch v := v.(type) {
	case bool:
		return "bool", strconv.FormatBool(v)
	case int:
		return "int", strconv.Itoa(v)
	case float32:
		return "float", strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return "double", strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return "string", v
	case time.Time:
		return "date", v.Format(time.RFC3339Nano)
	case []byte:
		return "data", base64.StdEncoding.EncodeToString(v)
	case *url.URL:
		return "url", v.String()
	}
	return "unknown", fmt.Sprint(v)
}
