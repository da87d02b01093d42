package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Amr-9/b58check/internal/ui"
	"github.com/Amr-9/b58check/pkg/address"
	"github.com/Amr-9/b58check/pkg/base58"
	"github.com/Amr-9/b58check/pkg/cid"
	"github.com/Amr-9/b58check/pkg/hash2"
)

// autoCapacity lets the command size buffers itself.
const autoCapacity = -1

func (a *app) encodeCommand() *cobra.Command {
	capacity := autoCapacity
	cmd := &cobra.Command{
		Use:   "encode [data]",
		Short: "Encode binary data (argument or stdin) as Base58",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readBinary(args)
			if err != nil {
				return err
			}
			log := a.log.WithFields(logrus.Fields{"op": "encode", "bytes": len(data)})

			if capacity == autoCapacity {
				capacity = base58.EncodedMaxLen(len(data))
			}
			if capacity < 0 {
				return fmt.Errorf("invalid --capacity %d", capacity)
			}
			dst := make([]byte, capacity)
			n, err := base58.Encode(dst, data)
			if err != nil {
				a.explain(log, err)
				return err
			}
			log.WithField("chars", n).Debug("encoded")
			a.console.Value(string(dst[:n]))
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", autoCapacity, "destination size in characters (-1 sizes it automatically)")
	return cmd
}

func (a *app) decodeCommand() *cobra.Command {
	capacity := autoCapacity
	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode Base58 text (argument or stdin) to binary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(args)
			if err != nil {
				return err
			}
			log := a.log.WithFields(logrus.Fields{"op": "decode", "chars": len(text)})

			if capacity == autoCapacity {
				capacity = len(text)
			}
			if capacity < 0 {
				return fmt.Errorf("invalid --capacity %d", capacity)
			}
			dst := make([]byte, capacity)
			n, err := base58.Decode(dst, text)
			if err != nil {
				a.explain(log, err)
				return err
			}
			log.WithField("bytes", n).Debug("decoded")
			return a.writeBinary(dst[len(dst)-n:])
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", autoCapacity, "largest accepted decoded size in bytes (-1 sizes it automatically)")
	return cmd
}

func (a *app) checkEncodeCommand() *cobra.Command {
	var versionByte uint8
	cmd := &cobra.Command{
		Use:   "check-encode [data]",
		Short: "Encode a version byte and payload as Base58Check",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := hash2.NewChecker(a.cfg.Hash)
			if err != nil {
				return err
			}
			payload, err := a.readBinary(args)
			if err != nil {
				return err
			}
			log := a.log.WithFields(logrus.Fields{
				"op":      "check-encode",
				"hash":    a.cfg.Hash,
				"version": versionByte,
				"bytes":   len(payload),
			})

			s, err := checker.Encode(versionByte, payload)
			if err != nil {
				a.explain(log, err)
				return err
			}
			log.Debug("encoded record")
			a.console.Value(s)
			return nil
		},
	}
	cmd.Flags().Uint8Var(&versionByte, "version-byte", 0, "version byte prepended to the payload")
	return cmd
}

func (a *app) checkDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-decode [text]",
		Short: "Decode and verify a Base58Check string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := hash2.NewChecker(a.cfg.Hash)
			if err != nil {
				return err
			}
			text, err := a.readText(args)
			if err != nil {
				return err
			}
			log := a.log.WithFields(logrus.Fields{"op": "check-decode", "hash": a.cfg.Hash, "chars": len(text)})

			version, payload, err := checker.Decode(text)
			if err != nil {
				a.explain(log, err)
				return err
			}
			log.WithField("version", version).Debug("record verified")
			a.console.Field("version", fmt.Sprintf("0x%02x", version))
			a.console.Field("payload", hex.EncodeToString(payload))
			return nil
		},
	}
}

func (a *app) addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Generate or inspect blockchain addresses",
	}

	var network, addrType string
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a key pair and its address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := address.ParseNetwork(network)
			if err != nil {
				return err
			}
			t, err := address.ParseAddressType(addrType)
			if err != nil {
				return err
			}

			var result *address.Result
			switch n {
			case address.Bitcoin:
				result, err = address.GenerateBitcoinKey(t)
			case address.Tron:
				result, err = address.GenerateTronKey()
			default:
				result, err = address.GenerateSolanaKey()
			}
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"op": "address-new", "network": result.Network.String()}).Debug("generated key")
			a.console.PrintResult(result)
			return nil
		},
	}
	newCmd.Flags().StringVar(&network, "network", "bitcoin", "bitcoin, tron or solana")
	newCmd.Flags().StringVar(&addrType, "type", "default", "bitcoin address type: legacy, segwit or taproot")

	parseCmd := &cobra.Command{
		Use:   "parse [address]",
		Short: "Verify a Base58 address and show its contents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(args)
			if err != nil {
				return err
			}
			if bad := address.InvalidChars(text); len(bad) > 0 {
				a.console.Fail(fmt.Sprintf("invalid characters %q", string(bad)), "Base58 excludes 0, O, I and l")
				return fmt.Errorf("invalid address %q", text)
			}

			info, err := address.Parse(text)
			if err != nil {
				// Solana addresses carry no checksum.
				if pub, solErr := address.ParseSolana(text); solErr == nil {
					a.console.Field("network", address.Solana.String())
					a.console.Field("pubkey", hex.EncodeToString(pub))
					return nil
				}
				a.explain(a.log.WithField("op", "address-parse"), err)
				return err
			}
			a.console.Field("network", info.Network.String())
			if info.Network == address.Bitcoin {
				a.console.Field("type", info.Type.String())
			}
			a.console.Field("version", fmt.Sprintf("0x%02x", info.Version))
			a.console.Field("payload", hex.EncodeToString(info.Payload))
			return nil
		},
	}

	cmd.AddCommand(newCmd, parseCmd)
	return cmd
}

func (a *app) cidCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cid [file]",
		Short: "Print the CIDv0 of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(a.in)
			}
			if err != nil {
				return err
			}
			s, err := cid.V0(data)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"op": "cid", "bytes": ui.FormatBytes(len(data))}).Debug("hashed")
			a.console.Value(s)
			return nil
		},
	}
}

func (a *app) hashesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hashes",
		Short: "List the double hashes accepted by --hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range hash2.Names() {
				a.console.Value(name)
			}
			return nil
		},
	}
}

// explain prints a user facing description of a codec error and logs it.
func (a *app) explain(log *logrus.Entry, err error) {
	var e *base58.Error
	if !errors.As(err, &e) {
		log.WithError(err).Warn("operation failed")
		return
	}

	fields := logrus.Fields{"kind": string(e.Kind)}
	hint := ""
	switch e.Kind {
	case base58.KindInvalidChar:
		fields["offset"] = e.Offset
		hint = "Base58 excludes 0, O, I and l"
	case base58.KindInsufficientCapacity, base58.KindEncodeFailed:
		if req, ok := base58.RequiredLen(err); ok {
			fields["required"] = req
			hint = fmt.Sprintf("retry with --capacity %d", req)
		}
	case base58.KindTooLarge:
		hint = "raise --capacity"
	}
	if code := e.Kind.Code(); code != 0 {
		fields["code"] = code
		hint = fmt.Sprintf("libbase58 status %d", code)
	}
	log.WithFields(fields).Warn(e.Message)
	a.console.Fail(e.Message, hint)
}

// readBinary returns the first argument or all of stdin, hex decoded when
// --hex is set.
func (a *app) readBinary(args []string) ([]byte, error) {
	var data []byte
	if len(args) > 0 {
		data = []byte(args[0])
	} else {
		b, err := io.ReadAll(a.in)
		if err != nil {
			return nil, err
		}
		data = b
	}
	if a.cfg.Hex {
		return hex.DecodeString(strings.TrimSpace(string(data)))
	}
	return data, nil
}

// readText returns the first argument or stdin with surrounding whitespace
// removed.
func (a *app) readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	b, err := io.ReadAll(a.in)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// writeBinary writes decoded bytes raw, or as a hex line when --hex is set.
func (a *app) writeBinary(b []byte) error {
	if a.cfg.Hex {
		a.console.Value(hex.EncodeToString(b))
		return nil
	}
	_, err := a.out.Write(b)
	return err
}
