package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "doa.yaml")
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return filePath
}

func TestParse_ValidSpecFile(t *testing.T) {
	validYaml := `apiVersion: v1
kind: RunSpec
metadata:
  name: build-tools
  description: Containerized build helpers
specs:
  rust-build:
    help: Build the project with the musl toolchain
    image: clux/muslrust:stable
    command: ["cargo", "build", "--release"]
    envs:
      CARGO_HOME: /cache/cargo
    env_file: .env
    network: host
    ports:
      - "8080:80"
    volumes:
      - "$PWD:/volume"
    user: "1000:1000"
    extra_flags:
      - "--pull=never"
  shell:
    help: Drop into an interactive shell
    image: alpine
    interactive: true
    tty: true
`

	file, err := Parse(writeSpecFile(t, validYaml))
	if err != nil {
		t.Fatalf("Expected successful parsing, got error: %v", err)
	}

	if file.APIVersion != "v1" {
		t.Errorf("Expected APIVersion 'v1', got '%s'", file.APIVersion)
	}
	if file.Kind != "RunSpec" {
		t.Errorf("Expected Kind 'RunSpec', got '%s'", file.Kind)
	}
	if len(file.Specs) != 2 {
		t.Fatalf("Expected 2 specs, got %d", len(file.Specs))
	}

	build, ok := file.Specs["rust-build"]
	if !ok {
		t.Fatal("Expected spec 'rust-build' to be present")
	}
	if build.Image != "clux/muslrust:stable" {
		t.Errorf("Expected image 'clux/muslrust:stable', got '%s'", build.Image)
	}
	if build.EnvFile != ".env" {
		t.Errorf("Expected env_file '.env', got '%s'", build.EnvFile)
	}
	if len(build.ExtraFlags) != 1 || build.ExtraFlags[0] != "--pull=never" {
		t.Errorf("Expected extra_flags ['--pull=never'], got %v", build.ExtraFlags)
	}
	if build.Envs["CARGO_HOME"] != "/cache/cargo" {
		t.Errorf("Expected CARGO_HOME env, got %v", build.Envs)
	}

	sh, ok := file.Specs["shell"]
	if !ok {
		t.Fatal("Expected spec 'shell' to be present")
	}
	if sh.Interactive == nil || !*sh.Interactive {
		t.Error("Expected interactive to be true")
	}
	if sh.Help != "Drop into an interactive shell" {
		t.Errorf("Unexpected help text: %q", sh.Help)
	}
}

func TestParse_PreservesKeyCase(t *testing.T) {
	content := `apiVersion: v1
kind: RunSpec
specs:
  Greet:
    image: alpine
    envs:
      MY_KEY: value
      MixedCase: kept
`

	file, err := Parse(writeSpecFile(t, content))
	if err != nil {
		t.Fatalf("Expected successful parsing, got error: %v", err)
	}

	spec, ok := file.Specs["Greet"]
	if !ok {
		t.Fatalf("Expected spec name 'Greet' preserved verbatim, got %v", file.Specs)
	}
	if _, ok := spec.Envs["MY_KEY"]; !ok {
		t.Errorf("Expected env key 'MY_KEY' preserved verbatim, got %v", spec.Envs)
	}
	if _, ok := spec.Envs["MixedCase"]; !ok {
		t.Errorf("Expected env key 'MixedCase' preserved verbatim, got %v", spec.Envs)
	}
}

func TestParse_FileNotFound(t *testing.T) {
	_, err := Parse("nonexistent-file.yaml")
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "spec file not found") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse(writeSpecFile(t, "apiVersion: v1\nkind: [unclosed"))
	if err == nil {
		t.Fatal("Expected error for malformed YAML, got nil")
	}
}

func TestParse_MissingImage(t *testing.T) {
	content := `apiVersion: v1
kind: RunSpec
specs:
  broken:
    help: image is missing
`

	_, err := Parse(writeSpecFile(t, content))
	if err == nil {
		t.Fatal("Expected validation error for missing image, got nil")
	}
	if !strings.Contains(err.Error(), "Image") {
		t.Errorf("Expected image field in validation error, got: %v", err)
	}
}

func TestParse_WrongKind(t *testing.T) {
	content := `apiVersion: v1
kind: Blueprint
specs:
  ok:
    image: alpine
`

	_, err := Parse(writeSpecFile(t, content))
	if err == nil {
		t.Fatal("Expected validation error for wrong kind, got nil")
	}
	if !strings.Contains(err.Error(), "RunSpec") {
		t.Errorf("Expected expected-kind in validation error, got: %v", err)
	}
}

func TestLookup(t *testing.T) {
	content := `apiVersion: v1
kind: RunSpec
specs:
  present:
    image: alpine
`
	filePath := writeSpecFile(t, content)

	spec, err := Lookup(filePath, "present")
	if err != nil {
		t.Fatalf("Expected successful lookup, got error: %v", err)
	}
	if spec.Image != "alpine" {
		t.Errorf("Expected image 'alpine', got '%s'", spec.Image)
	}

	_, err = Lookup(filePath, "absent")
	if err == nil {
		t.Fatal("Expected error for unknown spec name, got nil")
	}
	if !strings.Contains(err.Error(), "absent") {
		t.Errorf("Expected spec name in error, got: %v", err)
	}
}
