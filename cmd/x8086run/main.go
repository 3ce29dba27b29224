// Command x8086run loads a flat real-mode binary into the x86 core and
// runs it for a fixed instruction budget, then prints the resulting
// architectural state.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"x8086/arch/cpu/x86"
	"x8086/buildinfo"
	"x8086/config"
)

// buildinfo fields, set by the release process via -ldflags.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// fileConfig is the optional INI-style settings file a run can load to
// override the defaults below, per the donor's own config struct-tag
// marshaling style.
type fileConfig struct {
	Segment  string `config:"load.segment,default=0x0000"`
	Offset   string `config:"load.offset,default=0x0100"`
	CS       string `config:"cpu.cs,default=0x0000"`
	IP       string `config:"cpu.ip,default=0x0100"`
	MemoryKB int    `config:"memory.size_kb,default=1024"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "x8086run",
		Short: "Run a flat 8086 real-mode binary against the x86 core",
	}

	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(buildinfo.Version(version, commit, date))
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		segmentStr string
		offsetStr  string
		csStr      string
		ipStr      string
		memoryKB   int
		budget     int
		showRegs   bool
		trace      bool
	)

	cmd := &cobra.Command{
		Use:   "run [binary]",
		Short: "Load a flat binary and execute it for a fixed instruction budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := fileConfig{
				Segment:  segmentStr,
				Offset:   offsetStr,
				CS:       csStr,
				IP:       ipStr,
				MemoryKB: memoryKB,
			}
			if configPath != "" {
				if err := config.Load(configPath, &cfg); err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
			}

			segment, err := parseHexOrDec(cfg.Segment)
			if err != nil {
				return fmt.Errorf("--load-segment: %w", err)
			}
			offset, err := parseHexOrDec(cfg.Offset)
			if err != nil {
				return fmt.Errorf("--load-offset: %w", err)
			}
			cs, err := parseHexOrDec(cfg.CS)
			if err != nil {
				return fmt.Errorf("--cs: %w", err)
			}
			ip, err := parseHexOrDec(cfg.IP)
			if err != nil {
				return fmt.Errorf("--ip: %w", err)
			}

			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			cpu, err := x86.New(uint32(cfg.MemoryKB)*1024,
				x86.WithInitialCS(uint16(cs)),
				x86.WithInitialIP(uint16(ip)))
			if err != nil {
				return fmt.Errorf("creating CPU: %w", err)
			}

			physLoad := (uint32(segment)<<4 + uint32(offset)) & x86.AddressMask
			if err := cpu.LoadProgram(physLoad, program); err != nil {
				return fmt.Errorf("loading program: %w", err)
			}

			if trace {
				return runTraced(cpu, budget)
			}

			ran, err := cpu.Execute(budget)
			if err != nil {
				return fmt.Errorf("execution fault: %w", err)
			}
			fmt.Printf("ran %d instructions (budget %d)\n", ran, budget)

			if showRegs {
				printRegisters(cpu)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "optional INI config file")
	cmd.Flags().StringVar(&segmentStr, "load-segment", "0x0000", "segment to load the binary at")
	cmd.Flags().StringVar(&offsetStr, "load-offset", "0x0100", "offset to load the binary at")
	cmd.Flags().StringVar(&csStr, "cs", "0x0000", "initial CS")
	cmd.Flags().StringVar(&ipStr, "ip", "0x0100", "initial IP")
	cmd.Flags().IntVar(&memoryKB, "memory-kb", 1024, "RAM size in KiB")
	cmd.Flags().IntVar(&budget, "budget", 1000, "maximum instructions to execute")
	cmd.Flags().BoolVar(&showRegs, "regs", true, "print registers after execution")
	cmd.Flags().BoolVar(&trace, "trace", false, "print a line per executed instruction")

	return cmd
}

func runTraced(cpu *x86.CPU, budget int) error {
	for i := 0; i < budget; i++ {
		if cpu.Halted() {
			break
		}
		ts, err := cpu.StepTraced()
		if err != nil {
			return fmt.Errorf("execution fault: %w", err)
		}
		fmt.Println(ts.String())
		if changes := ts.FlagChanges(); len(changes) > 0 {
			fmt.Println("  flags: " + strings.Join(changes, " "))
		}
	}
	printRegisters(cpu)
	return nil
}

func printRegisters(cpu *x86.CPU) {
	fmt.Printf("AX=%04X CX=%04X DX=%04X BX=%04X SP=%04X BP=%04X SI=%04X DI=%04X\n",
		cpu.AX(), cpu.CX(), cpu.DX(), cpu.BX(), cpu.SP(), cpu.BP(), cpu.SI(), cpu.DI())
	fmt.Printf("ES=%04X CS=%04X SS=%04X DS=%04X IP=%04X FL=%04X\n",
		cpu.ES(), cpu.CS(), cpu.SS(), cpu.DS(), cpu.IP(), cpu.Packed())
}

// parseHexOrDec accepts "0x1234"-style hex or a plain decimal string.
func parseHexOrDec(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 32)
	}
	return strconv.ParseUint(s, 10, 32)
}
