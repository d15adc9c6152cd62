package main

import "testing"

func TestExportDoesNotCleanByDefault(t *testing.T) {
	f := exportCmd.Flags().Lookup("clean")
	if f == nil {
		t.Fatal("export has no --clean flag")
	}
	if f.DefValue != "false" {
		t.Errorf("--clean default = %s, want false", f.DefValue)
	}
}
