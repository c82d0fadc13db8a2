/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/qrsymbol/qrcodegen"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a QR Code symbol and write it to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var (
	flagLevel     string
	flagOut       string
	flagFormat    string
	flagQuietZone int
	flagVersion   int
	flagBoostECL  bool
)

func init() {
	encodeCmd.Flags().StringVar(&flagLevel, "level", "M", "error correction level: L, M, Q, or H")
	encodeCmd.Flags().StringVar(&flagOut, "out", "qrcode.svg", "output file path")
	encodeCmd.Flags().StringVar(&flagFormat, "format", "svg", "output format: svg or matrix")
	encodeCmd.Flags().IntVar(&flagQuietZone, "quiet-zone", 4, "quiet zone width in modules")
	encodeCmd.Flags().IntVar(&flagVersion, "version", -1, "symbol version 1-40, or -1 to auto-select")
	encodeCmd.Flags().BoolVar(&flagBoostECL, "boost-ecl", true, "raise the ECC level when spare capacity allows")
}

func parseLevel(s string) (qrcodegen.ECCLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcodegen.Low, nil
	case "M":
		return qrcodegen.Medium, nil
	case "Q":
		return qrcodegen.Quartile, nil
	case "H":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unrecognized error correction level %q", s)
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	level, err := parseLevel(flagLevel)
	if err != nil {
		return err
	}

	log.Debug().Str("text", args[0]).Str("level", level.String()).Int("version", flagVersion).Msg("encoding")

	m, err := qrcodegen.Encode(args[0], level,
		qrcodegen.WithQuietZone(flagQuietZone),
		qrcodegen.WithVersion(flagVersion),
		qrcodegen.WithBoostECL(flagBoostECL),
	)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	log.Info().Int("version", m.Version()).Int("size", m.Size()).Msg("encoded symbol")

	var out string
	switch strings.ToLower(flagFormat) {
	case "svg":
		out = toSVGString(m, true)
	case "matrix":
		var sb strings.Builder
		for y := 0; y < m.Size(); y++ {
			for x := 0; x < m.Size(); x++ {
				if m.Get(y, x) {
					sb.WriteString("#")
				} else {
					sb.WriteString(".")
				}
			}
			sb.WriteString("\n")
		}
		out = sb.String()
	default:
		return fmt.Errorf("unrecognized output format %q", flagFormat)
	}

	if err := os.WriteFile(flagOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	log.Info().Str("path", flagOut).Msg("wrote output")
	return nil
}
