/*
 * YakGo - bitboard chess move generation engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	yakgo "github.com/frankkopp/YakGo"
	"github.com/frankkopp/YakGo/internal/board"
	"github.com/frankkopp/YakGo/internal/cli"
	"github.com/frankkopp/YakGo/internal/config"
	"github.com/frankkopp/YakGo/internal/logging"
	"github.com/frankkopp/YakGo/internal/perft"
)

var out = message.NewPrinter(language.German)

func main() {

	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", board.StartFen, "fen for the position to use")
	perftDepth := flag.Int("perft", 0, "runs perft on the position up to the given depth")
	showBoard := flag.Bool("board", false, "prints the position and its legal moves and exits")
	profileFlag := flag.Bool("profile", false, "writes a cpu profile to the current directory")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// set log level from cmd line options overwriting config file or defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level of the standard log - required as packages
	// acquire the logger as a global var even before main() is called.
	logging.GetLog()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// print position and legal moves
	if *showBoard {
		b, err := board.NewBoardFen(*fen)
		if err != nil {
			out.Printf("Invalid fen: %s\n", *fen)
			return
		}
		out.Print(cli.SprintBoard(b))
		out.Printf("Fen  : %s\n", b.Fen())
		out.Printf("Moves: %s\n", cli.SprintMoves(b))
		return
	}

	// perft
	depth := *perftDepth
	if depth == 0 && config.Settings.Perft.Depth > 0 {
		depth = config.Settings.Perft.Depth
	}
	position := *fen
	if position == board.StartFen && config.Settings.Perft.Fen != "" {
		position = config.Settings.Perft.Fen
	}
	if depth > 0 {
		b, err := board.NewBoardFen(position)
		if err != nil {
			out.Printf("Invalid fen: %s\n", position)
			return
		}
		out.Print(cli.SprintBoard(b))
		p := perft.NewPerft()
		p.StartPerftMulti(position, 1, depth)
		return
	}

	flag.Usage()
}

func printVersionInfo() {
	out.Printf("YakGo %s\n", yakgo.Version)
	out.Printf("Environment:\n")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
}
