package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keycell/internal/paths"
	"github.com/mesh-intelligence/keycell/internal/tracedb"
	"github.com/mesh-intelligence/keycell/pkg/demofam"
	"github.com/mesh-intelligence/keycell/pkg/dlist"
	"github.com/mesh-intelligence/keycell/pkg/keycell"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the list demo under a fresh owner",
		Long: `Demo builds a doubly-linked list from the configured items, removes the
middle node, and shows the brand checks: a foreign owner is rejected and
two simultaneous mutable views must name distinct cells.`,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return err
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}

	var store *tracedb.Store
	if v.GetBool(cfgKeyTraceEnabled) {
		store, err = tracedb.Open(tracedb.Config{DataDir: dataDir})
		if err != nil {
			return fmt.Errorf("open trace store: %w", err)
		}
		defer store.Close()
	}
	record := func(op, detail string) error {
		if store == nil {
			return nil
		}
		_, err := store.Record(op, detail)
		return err
	}

	items := v.GetIntSlice(cfgKeyDemoItems)
	out := cmd.OutOrStdout()
	owner := keycell.NewOwner()

	head, err := dlist.FromSeq(owner, items)
	if err != nil {
		return err
	}
	vals, err := dlist.CollectValues(owner, head)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "built: %v\n", vals)
	if err := record("build", fmt.Sprintf("%v", vals)); err != nil {
		return err
	}

	if len(items) >= 3 {
		if err := demoRemoveMiddle(out, owner, head, record); err != nil {
			return err
		}
		if err := demoWrite2(out, owner, head, record); err != nil {
			return err
		}
	}

	// A second dynamic owner guards a disjoint universe of cells: its brand
	// never matches, no matter how the list was built.
	if head != nil {
		if _, err := keycell.Read(keycell.NewOwner(), head.Cell()); err != nil {
			fmt.Fprintf(out, "foreign owner read: %v\n", err)
		}
	}

	return demoFamily(out, record)
}

// demoRemoveMiddle unlinks the middle node and shows that both of its
// links and its neighbors' views are consistent afterwards.
func demoRemoveMiddle(out io.Writer, owner keycell.Owner, head *dlist.NodeRef[int], record func(op, detail string) error) error {
	mid := head
	n, err := keycell.Read(owner, mid.Cell())
	if err != nil {
		return err
	}
	mid = n.Next()
	if mid == nil {
		return nil
	}

	midVal, err := keycell.Read(owner, mid.Cell())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "removed: %v\n", midVal.Data)

	if err := dlist.Remove(owner, mid); err != nil {
		return err
	}
	vals, err := dlist.CollectValues(owner, head)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "after remove: %v\n", vals)
	if err := record("remove", fmt.Sprintf("%v", vals)); err != nil {
		return err
	}

	detached, err := keycell.Read(owner, mid.Cell())
	if err != nil {
		return err
	}
	if _, ok := detached.Prev(); !ok {
		fmt.Fprintln(out, "removed node prev: absent")
	}
	if detached.Next() == nil {
		fmt.Fprintln(out, "removed node next: absent")
	}
	return nil
}

// demoWrite2 doubles the first two payloads through one Write2 call.
func demoWrite2(out io.Writer, owner keycell.Owner, head *dlist.NodeRef[int], record func(op, detail string) error) error {
	first, err := keycell.Read(owner, head.Cell())
	if err != nil {
		return err
	}
	second := first.Next()
	if second == nil {
		return nil
	}

	a, b, err := keycell.Write2(owner, head.Cell(), second.Cell())
	if err != nil {
		return err
	}
	a.Data *= 2
	b.Data *= 2

	vals, err := dlist.CollectValues(owner, head)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "write2 doubled: %v\n", vals)
	return record("write2", fmt.Sprintf("%v", vals))
}

// demoFamily exercises the generated Demo family: in-family access works,
// and a second owner of the same family is rejected at first access.
func demoFamily(out io.Writer, record func(op, detail string) error) error {
	owner := demofam.NewDemoOwner()
	cell := demofam.NewDemoCell(owner, "hello")

	s, err := demofam.DemoWrite(owner, cell)
	if err != nil {
		return err
	}
	*s += "!"

	got, err := demofam.DemoRead(owner, cell)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "family value: %s\n", *got)

	other := demofam.NewDemoOwner()
	if _, err := demofam.DemoRead(other, cell); err != nil {
		fmt.Fprintf(out, "family foreign owner read: %v\n", err)
	}
	return record("family", *got)
}
