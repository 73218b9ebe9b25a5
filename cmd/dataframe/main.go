package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/okano-tomoyuki/data-frame/pkg/config"
	"github.com/okano-tomoyuki/data-frame/pkg/convert"
	"github.com/okano-tomoyuki/data-frame/pkg/dataframe"
	"github.com/okano-tomoyuki/data-frame/pkg/logger"
)

var version = "0.1.0"

// frameFlags carries the parse options shared by every subcommand.
type frameFlags struct {
	configFile     string
	separator      string
	lineTerminator string
	noHeader       bool
	noTrim         bool
}

func (f *frameFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.configFile, "config", "", "YAML file with read options")
	cmd.PersistentFlags().StringVar(&f.separator, "separator", "", "field separator (default \",\")")
	cmd.PersistentFlags().StringVar(&f.lineTerminator, "line-terminator", "", "record separator (default from environment, falling back to \\n)")
	cmd.PersistentFlags().BoolVar(&f.noHeader, "no-header", false, "treat the first line as data, synthesizing column names")
	cmd.PersistentFlags().BoolVar(&f.noTrim, "no-trim", false, "keep surrounding whitespace on every field")
}

// readOptions resolves the option precedence: defaults, then config file,
// then explicit flags.
func (f *frameFlags) readOptions() (config.ReadOptions, error) {
	opts := config.DefaultReadOptions()

	if f.configFile != "" {
		if err := config.Load(f.configFile, &opts); err != nil {
			return opts, err
		}
	}
	if f.separator != "" {
		opts.Separator = f.separator
	}
	if f.lineTerminator != "" {
		opts.LineTerminator = f.lineTerminator
	}
	if f.noHeader {
		opts.HeaderPresent = false
	}
	if f.noTrim {
		opts.AutoTrim = false
	}

	return opts, nil
}

func (f *frameFlags) load(path string) (*dataframe.DataFrame, error) {
	opts, err := f.readOptions()
	if err != nil {
		return nil, err
	}
	return dataframe.ReadCSV(path, opts)
}

// frameDocument is the JSON shape emitted for derived frames.
type frameDocument struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func emit(df *dataframe.DataFrame, output, separator string) error {
	if output != "" {
		opts := config.DefaultWriteOptions()
		if separator != "" {
			opts.Separator = separator
		}
		return dataframe.WriteCSV(df, output, opts)
	}

	data, err := json.Marshal(frameDocument{Header: df.Header(), Rows: df.Rows()})
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	flags := &frameFlags{}
	logLevel := "info"

	root := &cobra.Command{
		Use:   "dataframe",
		Short: "dataframe - in-memory tabular-data toolkit for delimited text",
		Long: `dataframe loads delimited text (CSV-like) into a header/row structure and
exposes projection, slicing and typed conversion over it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Level: logLevel, Encoding: "console"})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.register(root)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dataframe v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "describe <file>",
		Short: "Print the header names, row count and column count of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := flags.load(args[0])
			if err != nil {
				return err
			}
			doc, err := df.Describe().JSON()
			if err != nil {
				return err
			}
			fmt.Println(doc)
			return nil
		},
	})

	var output string

	selectCmd := &cobra.Command{
		Use:   "select <file> <column>...",
		Short: "Project columns by name, in the requested order",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := flags.load(args[0])
			if err != nil {
				return err
			}
			projected, err := df.Columns(args[1:]...)
			if err != nil {
				return err
			}
			logger.Debug("projected columns", zap.Strings("columns", args[1:]))
			return emit(projected, output, flags.separator)
		},
	}
	selectCmd.Flags().StringVarP(&output, "output", "o", "", "write the result as CSV to this path instead of printing JSON")

	var start, end int

	sliceCmd := &cobra.Command{
		Use:   "slice <file>",
		Short: "Select the half-open row range [start, end)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := flags.load(args[0])
			if err != nil {
				return err
			}
			sliced, err := df.Slice(start, end)
			if err != nil {
				return err
			}
			return emit(sliced, output, flags.separator)
		},
	}
	sliceCmd.Flags().IntVar(&start, "start", 0, "start row index (negative counts from the end)")
	sliceCmd.Flags().IntVar(&end, "end", 0, "end row index, exclusive (negative counts from the end)")
	sliceCmd.Flags().StringVarP(&output, "output", "o", "", "write the result as CSV to this path instead of printing JSON")

	var rowIndex int

	rowCmd := &cobra.Command{
		Use:   "row <file>",
		Short: "Select a single row by position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := flags.load(args[0])
			if err != nil {
				return err
			}
			selected, err := df.Row(rowIndex)
			if err != nil {
				return err
			}
			return emit(selected, output, flags.separator)
		},
	}
	rowCmd.Flags().IntVarP(&rowIndex, "index", "i", 0, "row index (negative counts from the end)")
	rowCmd.Flags().StringVarP(&output, "output", "o", "", "write the result as CSV to this path instead of printing JSON")

	var targetType, axisName string

	convertCmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Coerce the frame into a typed vector or matrix and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := flags.load(args[0])
			if err != nil {
				return err
			}
			value, err := convertFrame(df, targetType, axisName)
			if err != nil {
				return err
			}
			data, err := json.Marshal(value)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
	convertCmd.Flags().StringVarP(&targetType, "type", "t", "string", "target type: string, bool, int or float")
	convertCmd.Flags().StringVarP(&axisName, "axis", "a", "auto", "traversal: column, row, auto or matrix")

	root.AddCommand(selectCmd, sliceCmd, rowCmd, convertCmd)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// convertFrame dispatches on the flag-supplied type name because generics
// cannot be instantiated from runtime strings.
func convertFrame(df *dataframe.DataFrame, targetType, axisName string) (interface{}, error) {
	switch targetType {
	case "string":
		return convertTyped[string](df, axisName)
	case "bool":
		return convertTyped[bool](df, axisName)
	case "int":
		return convertTyped[int](df, axisName)
	case "float":
		return convertTyped[float64](df, axisName)
	default:
		return nil, fmt.Errorf("unknown target type %q", targetType)
	}
}

func convertTyped[T convert.Primitive](df *dataframe.DataFrame, axisName string) (interface{}, error) {
	switch axisName {
	case "column":
		return dataframe.ToVector[T](df, dataframe.AxisColumn)
	case "row":
		return dataframe.ToVector[T](df, dataframe.AxisRow)
	case "auto":
		return dataframe.Flatten[T](df)
	case "matrix":
		return dataframe.ToMatrix[T](df), nil
	default:
		return nil, fmt.Errorf("unknown axis %q", axisName)
	}
}
