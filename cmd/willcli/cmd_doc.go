package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/digiheir/docstore"
)

func openDocstore(ctx context.Context, configPath string) (docstore.Store, error) {
	cfg, err := docstore.ReadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	return docstore.NewFromConfig(ctx, cfg.Store)
}

func cmdDocUpload(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Upload a will document to the document store and print its reference.

The document is read from the file given as the first argument or from
standard input. The printed reference is what the create and update-document
commands expect.
`)
		fl.PrintDefaults()
	}
	var (
		configFl = fl.String("config", defaultDocstoreConfig(),
			"Path to the document store TOML configuration. You can use WILLCLI_DOCSTORE_CONFIG environment variable to set it.")
	)
	fl.Parse(args)

	src := input
	if path := fl.Arg(0); path != "" {
		fd, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open document: %s", err)
		}
		defer fd.Close()
		src = fd
	}
	data, err := ioutil.ReadAll(src)
	if err != nil {
		return fmt.Errorf("cannot read document: %s", err)
	}

	ctx := context.Background()
	store, err := openDocstore(ctx, *configFl)
	if err != nil {
		return fmt.Errorf("cannot open document store: %s", err)
	}
	ref, err := store.Upload(ctx, data)
	if err != nil {
		return fmt.Errorf("cannot upload document: %s", err)
	}
	_, err = fmt.Fprintln(output, ref)
	return err
}

func cmdDocFetch(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Fetch a will document from the document store and write its content to
standard output. The content is verified against the reference.
`)
		fl.PrintDefaults()
	}
	var (
		configFl = fl.String("config", defaultDocstoreConfig(),
			"Path to the document store TOML configuration. You can use WILLCLI_DOCSTORE_CONFIG environment variable to set it.")
		refFl = fl.String("ref", "", "Document reference.")
	)
	fl.Parse(args)

	ref, err := docstore.ParseRef(*refFl)
	if err != nil {
		flagDie("invalid -ref value: %s", err)
	}

	ctx := context.Background()
	store, err := openDocstore(ctx, *configFl)
	if err != nil {
		return fmt.Errorf("cannot open document store: %s", err)
	}
	data, err := store.Fetch(ctx, ref)
	if err != nil {
		return fmt.Errorf("cannot fetch document: %s", err)
	}
	_, err = output.Write(data)
	return err
}
