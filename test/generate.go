package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/SamSunny4/fks/internal/keygen"
	"github.com/SamSunny4/fks/pkg/fks"
)

const (
	usage = `%s cardinality_of_load cardinality_of_probes (load/10) load_output_file (%s) probe_output_file (%s)

 the default number of probe keys is cardinality_of_load / 10,
 probe keys are guaranteed absent from the load file

example:
 %s 100000 1000000
`
	defaultLoadCardinality = 100000
	defaultLoadOutput      = "load-keys.txt"
	defaultProbeOutput     = "probe-keys.txt"
)

type config struct {
	loadCardinality  int
	probeCardinality int
	loadOutput       string
	probeOutput      string
}

func formatUsage() string {
	name := os.Args[0]
	return fmt.Sprintf(usage, name, defaultLoadOutput, defaultProbeOutput, name)
}

// global conf
var conf config

func formatArgs() string {
	return fmt.Sprintf("generating %d load keys and %d probe keys to %s and %s",
		conf.loadCardinality, conf.probeCardinality, conf.loadOutput, conf.probeOutput)
}

func init() {
	// we have default values for everything
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			conf.loadCardinality = n
		} else {
			log.Fatal(err)
		}
	} else {
		conf.loadCardinality = defaultLoadCardinality
	}
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil {
			conf.probeCardinality = n
		} else {
			log.Fatal(err)
		}
	} else {
		conf.probeCardinality = conf.loadCardinality / 10
	}
	// loadOutput
	if len(os.Args) > 3 {
		conf.loadOutput = os.Args[3]
	} else {
		conf.loadOutput = defaultLoadOutput
	}
	// probeOutput
	if len(os.Args) > 4 {
		conf.probeOutput = os.Args[4]
	} else {
		conf.probeOutput = defaultProbeOutput
	}
}

func main() {
	println(formatUsage())
	salt := make([]byte, keygen.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		log.Fatal(err)
	}
	mix, err := keygen.NewMixer(keygen.SIP, salt)
	if err != nil {
		log.Fatal(err)
	}
	seq, err := keygen.NewSequence(mix, fks.DefaultPrime, uint(conf.loadCardinality+conf.probeCardinality))
	if err != nil {
		log.Fatal(err)
	}
	println(formatArgs())
	// probes are only certain to miss once every load key is drawn,
	// so the files are written in order
	output(conf.loadOutput, seq.Next, conf.loadCardinality)
	output(conf.probeOutput, seq.Absent, conf.probeCardinality)
}

func output(filename string, next func() uint64, n int) {
	if f, err := os.Create(filename); err == nil {
		defer f.Close()
		w := bufio.NewWriter(f)
		for i := 0; i < n; i++ {
			// and write it
			if _, err := fmt.Fprintf(w, "%d\n", next()); err != nil {
				log.Fatal(err)
			}
		}
		if err := w.Flush(); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Fatal(err)
	}
}
