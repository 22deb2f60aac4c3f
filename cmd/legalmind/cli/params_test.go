// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Title    string        `flag:"title" desc:"case title"`
		Verbose  bool          `flag:"verbose,v" desc:"enable verbose output"`
		Page     int           `flag:"page" desc:"page number"`
		Case     int64         `flag:"case" desc:"case ID"`
		Timeout  time.Duration `flag:"timeout" desc:"request timeout"`
		Tags     []string      `flag:"tags" desc:"tag list"`
		Untagged string        // no flag tag — should be skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--title", "Office lease renewal",
		"-v",
		"--page", "3",
		"--case", "1099511627776",
		"--timeout", "30s",
		"--tags", "a,b,c",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Title != "Office lease renewal" {
		t.Errorf("Title = %q, want %q", p.Title, "Office lease renewal")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Page != 3 {
		t.Errorf("Page = %d, want 3", p.Page)
	}
	if p.Case != 1099511627776 {
		t.Errorf("Case = %d, want 1099511627776", p.Case)
	}
	if p.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", p.Timeout)
	}
	if len(p.Tags) != 3 || p.Tags[0] != "a" || p.Tags[1] != "b" || p.Tags[2] != "c" {
		t.Errorf("Tags = %v, want [a b c]", p.Tags)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Sort    string        `flag:"sort" desc:"sort field" default:"createdAt"`
		Size    int           `flag:"size" desc:"page size" default:"20"`
		Case    int64         `flag:"case" desc:"case ID" default:"100"`
		Timeout time.Duration `flag:"timeout" desc:"timeout" default:"10s"`
		Debug   bool          `flag:"debug" desc:"debug mode" default:"true"`
		Tags    []string      `flag:"tags" desc:"tags" default:"x,y"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	// Parse with no arguments: should get all defaults.
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Sort != "createdAt" {
		t.Errorf("Sort = %q, want %q", p.Sort, "createdAt")
	}
	if p.Size != 20 {
		t.Errorf("Size = %d, want 20", p.Size)
	}
	if p.Case != 100 {
		t.Errorf("Case = %d, want 100", p.Case)
	}
	if p.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", p.Timeout)
	}
	if !p.Debug {
		t.Error("Debug = false, want true")
	}
	if len(p.Tags) != 2 || p.Tags[0] != "x" || p.Tags[1] != "y" {
		t.Errorf("Tags = %v, want [x y]", p.Tags)
	}
}

func TestBindFlags_EmbeddedJSONOutput(t *testing.T) {
	type params struct {
		JSONOutput
		Case int64 `flag:"case,c" desc:"case ID"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--json", "--case", "7"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Case != 7 {
		t.Errorf("Case = %d, want 7", p.Case)
	}
}

type binderParams struct {
	added bool
}

func (b *binderParams) AddFlags(flagSet *pflag.FlagSet) {
	b.added = true
	flagSet.String("custom", "", "custom flag")
}

func TestBindFlags_FlagBinderField(t *testing.T) {
	type params struct {
		Binder binderParams
		Name   string `flag:"name" desc:"a name"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if !p.Binder.added {
		t.Error("FlagBinder.AddFlags was not called")
	}
	if flagSet.Lookup("custom") == nil {
		t.Error("flag registered by FlagBinder is missing")
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	type params struct {
		Rate float32 `flag:"rate" desc:"unsupported"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags = nil, want error for unsupported field type")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %q, want 'unsupported type'", err.Error())
	}
}

func TestBindFlags_RequiresStructPointer(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags("not a struct", flagSet); err == nil {
		t.Fatal("BindFlags(string) = nil, want error")
	}
	value := 7
	if err := BindFlags(&value, flagSet); err == nil {
		t.Fatal("BindFlags(*int) = nil, want error")
	}
}

func TestBindFlags_BadDefault(t *testing.T) {
	type params struct {
		Size int `flag:"size" desc:"page size" default:"twenty"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags = nil, want error for unparseable default")
	}
	if !strings.Contains(err.Error(), "--size") {
		t.Errorf("error = %q, should name the flag", err.Error())
	}
}
