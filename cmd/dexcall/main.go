// ====================================
// File: cmd/dexcall/main.go
// ====================================
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/executor"
	"github.com/rovshanmuradov/solana-dex-cpi/internal/config"
	"github.com/rovshanmuradov/solana-dex-cpi/internal/logger"
	"github.com/rovshanmuradov/solana-dex-cpi/internal/wallet"
	"github.com/rovshanmuradov/solana-dex-cpi/programs"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

func main() {
	configPath := flag.String("config", "configs/config.json", "path to config file (exec only)")
	accountsArg := flag.String("accounts", "", "comma-separated account addresses (exec only)")
	dataArg := flag.String("data", "", "hex-encoded argument payload, discriminator excluded (exec only)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logger.New(*debug)
	defer log.Sync()

	reg := registry.New(log.Logger)
	if err := programs.RegisterAll(reg); err != nil {
		log.Fatal("Failed to populate registry", zap.Error(err))
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		for _, name := range reg.List() {
			p, _ := reg.Get(name)
			ops := make([]string, 0, len(p.Instructions))
			for _, d := range p.Instructions {
				ops = append(ops, d.Name)
			}
			fmt.Printf("%-24s %s  [%s]\n", p.Name, p.ProgramID, strings.Join(ops, ", "))
		}
	case "show":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		d, err := reg.Instruction(args[1], args[2])
		if err != nil {
			log.Fatal("Lookup failed", zap.Error(err))
		}
		printDescriptor(d)
	case "exec":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		if err := runExec(log, reg, *configPath, args[1], args[2], *accountsArg, *dataArg); err != nil {
			log.Fatal("Execution failed", zap.Error(err))
		}
	default:
		log.Warn("Unknown command", zap.String("command", args[0]))
		usage()
		os.Exit(2)
	}
}

func runExec(log *logger.Logger, reg *registry.Registry, configPath, protocol, op, accountsArg, dataArg string) error {
	d, err := reg.Instruction(protocol, op)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	w, err := wallet.LoadWallet(cfg.WalletKeyPath)
	if err != nil {
		return err
	}

	execCfg := executor.Config{
		Endpoints:     cfg.RPCList,
		Commitment:    rpc.CommitmentType(cfg.Commitment),
		SkipPreflight: cfg.SkipPreflight,
		Broadcast:     cfg.Broadcast,
	}
	if cfg.SignerProgram != "" {
		program, err := solana.PublicKeyFromBase58(cfg.SignerProgram)
		if err != nil {
			return fmt.Errorf("invalid signer_program: %w", err)
		}
		execCfg.SignerProgram = program
	}

	client, err := executor.New(execCfg, w.PrivateKey, log.Logger)
	if err != nil {
		return err
	}

	keys, err := parseAccounts(accountsArg)
	if err != nil {
		return err
	}
	bound, err := d.Bind(keys...)
	if err != nil {
		return err
	}

	data, err := hex.DecodeString(dataArg)
	if err != nil {
		return fmt.Errorf("invalid -data hex: %w", err)
	}

	invLog := log.WithInvocation(protocol, op)
	invLog.Info("Submitting instruction",
		zap.Stringer("program", d.ProgramID),
		zap.Int("accounts", bound.Len()),
		zap.Int("data_len", d.DataLen(cpi.RawArgs(data))))

	return cpi.Invoke(context.Background(), client, d, bound, cpi.RawArgs(data))
}

func parseAccounts(arg string) ([]solana.PublicKey, error) {
	if arg == "" {
		return nil, nil
	}
	parts := strings.Split(arg, ",")
	keys := make([]solana.PublicKey, 0, len(parts))
	for _, part := range parts {
		key, err := solana.PublicKeyFromBase58(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid account %q: %w", part, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func printDescriptor(d *cpi.Descriptor) {
	fmt.Printf("program:  %s\n", d.ProgramID)
	fmt.Printf("tag:      %x\n", d.Tag)
	fmt.Printf("accounts: %d\n", len(d.Accounts))
	for i, role := range d.Accounts {
		flags := "r-"
		if role.Writable {
			flags = "w-"
		}
		if role.Signer {
			flags = flags[:1] + "s"
		}
		fmt.Printf("  %2d. %-32s %s\n", i, role.Name, flags)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dexcall [flags] <command>")
	fmt.Fprintln(os.Stderr, "  list                      print all registered protocols")
	fmt.Fprintln(os.Stderr, "  show <protocol> <op>      print an instruction's account schema")
	fmt.Fprintln(os.Stderr, "  exec <protocol> <op>      submit an instruction (-config, -accounts, -data)")
}
