package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	md "github.com/meridiandb/gomeridian"
)

func main() {
	fileFlag := flag.String("file", "", "path to a wire type record in JSON; stdin when empty")
	schemaFlag := flag.Bool("schema", false, "treat the input as a column list and print the arrow schema")
	configFlag := flag.String("config", "", "client configuration file for logging")
	versionFlag := flag.Bool("version", false, "print the client library version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(md.MeridianGoClientVersion)
		return
	}

	if *configFlag != "" {
		if err := md.ConfigureLogging(*configFlag); err != nil {
			log.Fatalf("failed to configure logging. err: %v", err)
		}
	}

	var in io.Reader = os.Stdin
	if *fileFlag != "" {
		f, err := os.Open(*fileFlag)
		if err != nil {
			log.Fatalf("failed to open input. file: %v, err: %v", *fileFlag, err)
		}
		defer f.Close()
		in = f
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		log.Fatalf("failed to read input. err: %v", err)
	}

	if *schemaFlag {
		var specs []md.ColumnSpec
		if err = json.Unmarshal(raw, &specs); err != nil {
			log.Fatalf("failed to decode column list. err: %v", err)
		}
		cols, err := md.ColumnsFromWire(specs)
		if err != nil {
			log.Fatalf("failed to map column types. err: %v", err)
		}
		fmt.Println(md.NewArrowSchema(cols))
		return
	}

	var spec md.TypeSpec
	if err = json.Unmarshal(raw, &spec); err != nil {
		log.Fatalf("failed to decode type record. err: %v", err)
	}
	typ, err := md.TypeFromWire(&spec)
	if err != nil {
		log.Fatalf("failed to map type. err: %v", err)
	}
	fmt.Printf("type:      %v\n", typ)
	fmt.Printf("data kind: %v\n", typ.DataKind())
	fmt.Printf("scan type: %v\n", typ.ScanType())
	fmt.Printf("arrow:     %v\n", typ.ArrowDataType())
	fmt.Printf("hash:      %016x\n", typ.Hash())
}
