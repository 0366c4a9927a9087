package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()

	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestEnrich(t *testing.T) {
	tests := []struct {
		name      string
		input     Info
		buildInfo *debug.BuildInfo
		want      Info
	}{
		{
			name:  "빌드 정보 없음",
			input: Info{},
			want:  Info{Version: unknown, Commit: unknown, BuildDate: unknown},
		},
		{
			name:  "ldflags 값이 VCS 값보다 우선",
			input: Info{Version: "v1.0.0", Commit: "abc"},
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.9.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}, {Key: "vcs.time", Value: "2026-01-01"}},
			},
			want: Info{Version: "v1.0.0", Commit: "abc", BuildDate: "2026-01-01"},
		},
		{
			name:  "VCS 값으로 보강",
			input: Info{},
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "def"}, {Key: "vcs.modified", Value: "true"}},
			},
			want: Info{Version: unknown, Commit: "def", BuildDate: unknown, DirtyBuild: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.buildInfo)

			got := enrich(tt.input)

			tt.want.GoVersion = runtime.Version()
			tt.want.OS = runtime.GOOS
			tt.want.Arch = runtime.GOARCH
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{name: "빈 값", info: Info{}, want: unknown},
		{name: "dirty", info: Info{Version: "v1.0.0", DirtyBuild: true}, want: "v1.0.0+dirty"},
		{
			name: "전체",
			info: Info{Version: "v1.2.0", Commit: "f25b8bf123456", BuildNumber: "12", GoVersion: "go1.24.0", OS: "linux", Arch: "amd64"},
			want: "v1.2.0 (commit: f25b8bf, build: 12, go1.24.0 linux/amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGet(t *testing.T) {
	got := Get()

	assert.NotEmpty(t, got.Version)
	assert.Equal(t, runtime.Version(), got.GoVersion)
	assert.Equal(t, got.Version, got.ToMap()["version"])
}
