package options

import "testing"

func TestBootstrapFromMap(t *testing.T) {
	opts := BootstrapFromMap(map[string]any{
		"output":        "dist/app",
		"force":         "true", // loosely typed on purpose
		"standalone":    true,
		"bat":           false,
		"java-opt":      []any{"-Xmx2g", "-Dapp.env=ci"},
		"rule":          []string{"append:reference.conf"},
		"default-rules": 1,
	})

	if opts.Output != "dist/app" {
		t.Fatalf("Output = %q", opts.Output)
	}
	if !opts.Force || !opts.Standalone {
		t.Fatal("string and native booleans must both coerce")
	}
	if opts.Bat == nil || *opts.Bat {
		t.Fatalf("Bat = %v, want explicit false", opts.Bat)
	}
	if opts.DisableJarChecking != nil {
		t.Fatal("absent optional booleans must stay nil")
	}
	if len(opts.JavaOpts) != 2 || opts.JavaOpts[1] != "-Dapp.env=ci" {
		t.Fatalf("JavaOpts = %v", opts.JavaOpts)
	}
	if len(opts.AssemblyRules) != 1 {
		t.Fatalf("AssemblyRules = %v", opts.AssemblyRules)
	}
	if !opts.DefaultAssemblyRules {
		t.Fatal("numeric truthy value must coerce to true")
	}
}

func TestBootstrapFromMapEmpty(t *testing.T) {
	opts := BootstrapFromMap(map[string]any{})
	if opts.Output != "" || opts.Bat != nil || opts.JavaOpts != nil {
		t.Fatalf("empty map must yield zero bag, got %+v", opts)
	}
}

func TestFetchFromMap(t *testing.T) {
	opts := FetchFromMap(map[string]any{
		"exclude":       []string{"org:a", "org:b"},
		"exclude-file":  "excludes.txt",
		"exclude-rule":  []any{"org:app--org:a"},
		"intransitive":  "org:c:1.0", // single string becomes one entry
		"sbt-plugin":    []any{"org:plug:0.1.0"},
		"sbt-version":   1.0,
		"scala-version": "2.13.6",
		"scala-js":      "false",
		"native":        true,
	})

	if len(opts.Exclude) != 2 || opts.ExcludeFile != "excludes.txt" {
		t.Fatalf("excludes = %v %q", opts.Exclude, opts.ExcludeFile)
	}
	if len(opts.ExcludeRules) != 1 || opts.ExcludeRules[0] != "org:app--org:a" {
		t.Fatalf("ExcludeRules = %v", opts.ExcludeRules)
	}
	if len(opts.Intransitive) != 1 || opts.Intransitive[0] != "org:c:1.0" {
		t.Fatalf("Intransitive = %v", opts.Intransitive)
	}
	if opts.SbtVersion != "1" {
		t.Fatalf("SbtVersion = %q", opts.SbtVersion)
	}
	if opts.ScalaJS || !opts.Native {
		t.Fatalf("platform flags = %v %v", opts.ScalaJS, opts.Native)
	}
}
