package colorscheme

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/systheme/internal/application/port"
	"github.com/bnema/systheme/pkg/theme"
)

// mockConfigProvider implements ConfigProvider for testing.
type mockConfigProvider struct {
	scheme string
}

func (m *mockConfigProvider) GetColorScheme() string {
	return m.scheme
}

// mockDetector implements port.ColorSchemeDetector for testing.
type mockDetector struct {
	mu        sync.Mutex
	name      string
	priority  int
	available bool
	scheme    theme.Scheme
	detectOk  bool
}

func (m *mockDetector) Name() string    { return m.name }
func (m *mockDetector) Priority() int   { return m.priority }
func (m *mockDetector) Available() bool { return m.available }
func (m *mockDetector) Detect(context.Context) (theme.Scheme, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheme, m.detectOk
}

func (m *mockDetector) set(scheme theme.Scheme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheme = scheme
}

func lightDetector(name string, priority int) *mockDetector {
	return &mockDetector{name: name, priority: priority, available: true, scheme: theme.SchemeLight, detectOk: true}
}

func TestResolver_ConfigOverride(t *testing.T) {
	tests := []struct {
		name        string
		configValue string
		want        theme.Scheme
	}{
		{name: "prefer-dark from config", configValue: "prefer-dark", want: theme.SchemeDark},
		{name: "dark from config", configValue: "dark", want: theme.SchemeDark},
		{name: "prefer-light from config", configValue: "prefer-light", want: theme.SchemeLight},
		{name: "light from config", configValue: "light", want: theme.SchemeLight},
		{name: "case and spaces ignored", configValue: "  Prefer-Light ", want: theme.SchemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(&mockConfigProvider{scheme: tt.configValue})
			// Config beats even the highest priority detector
			resolver.RegisterDetector(&mockDetector{name: "system", priority: 100, available: true, scheme: 1 - tt.want, detectOk: true})

			pref := resolver.Resolve(context.Background())

			assert.Equal(t, tt.want, pref.Scheme)
			assert.Equal(t, "config", pref.Source)
		})
	}
}

func TestResolver_DefaultFallsThrough(t *testing.T) {
	for _, value := range []string{"default", "", "sepia"} {
		t.Run(value, func(t *testing.T) {
			resolver := NewResolver(&mockConfigProvider{scheme: value})
			resolver.RegisterDetector(lightDetector("test", 50))

			pref := resolver.Resolve(context.Background())

			assert.False(t, pref.PrefersDark())
			assert.Equal(t, "test", pref.Source)
		})
	}
}

func TestResolver_DetectorPriority(t *testing.T) {
	resolver := NewResolver(&mockConfigProvider{scheme: "default"})

	lowPriority := &mockDetector{name: "low", priority: 10, available: true, scheme: theme.SchemeDark, detectOk: true}
	highPriority := lightDetector("high", 100)

	// Register low first, high second (order shouldn't matter)
	resolver.RegisterDetector(lowPriority)
	resolver.RegisterDetector(highPriority)

	pref := resolver.Resolve(context.Background())

	assert.Equal(t, theme.SchemeLight, pref.Scheme)
	assert.Equal(t, "high", pref.Source)
}

func TestResolver_SkipsUnavailableDetector(t *testing.T) {
	resolver := NewResolver(nil)

	resolver.RegisterDetector(&mockDetector{name: "unavailable", priority: 100, available: false, scheme: theme.SchemeLight, detectOk: true})
	resolver.RegisterDetector(&mockDetector{name: "available", priority: 10, available: true, scheme: theme.SchemeDark, detectOk: true})

	pref := resolver.Resolve(context.Background())

	assert.True(t, pref.PrefersDark())
	assert.Equal(t, "available", pref.Source)
}

func TestResolver_SkipsFailedDetection(t *testing.T) {
	resolver := NewResolver(nil)

	resolver.RegisterDetector(&mockDetector{name: "failing", priority: 100, available: true, scheme: theme.SchemeLight, detectOk: false})
	resolver.RegisterDetector(&mockDetector{name: "succeeding", priority: 10, available: true, scheme: theme.SchemeDark, detectOk: true})

	pref := resolver.Resolve(context.Background())

	assert.True(t, pref.PrefersDark())
	assert.Equal(t, "succeeding", pref.Source)
}

func TestResolver_FallbackWhenAllFail(t *testing.T) {
	resolver := NewResolver(&mockConfigProvider{scheme: "default"})

	pref := resolver.Resolve(context.Background())
	assert.True(t, pref.PrefersDark())
	assert.Equal(t, "fallback", pref.Source)

	resolver.RegisterDetector(&mockDetector{name: "fail1", priority: 100, available: true, detectOk: false})
	resolver.RegisterDetector(&mockDetector{name: "fail2", priority: 50, available: false})

	pref = resolver.Resolve(context.Background())
	assert.True(t, pref.PrefersDark())
	assert.Equal(t, "fallback", pref.Source)
}

func TestResolver_OnChange(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(nil)
	detector := lightDetector("test", 50)
	resolver.RegisterDetector(detector)

	var got []port.ColorSchemePreference
	resolver.OnChange(func(pref port.ColorSchemePreference) {
		got = append(got, pref)
	})

	// Initial state is dark, detector says light
	resolver.Refresh(ctx)
	require.Len(t, got, 1)
	assert.False(t, got[0].PrefersDark())

	// Same preference: no callback
	resolver.Refresh(ctx)
	assert.Len(t, got, 1)

	detector.set(theme.SchemeDark)
	resolver.Refresh(ctx)
	require.Len(t, got, 2)
	assert.True(t, got[1].PrefersDark())
	assert.Equal(t, got[1], resolver.Current())
}

func TestResolver_OnChangeUnregister(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(nil)
	detector := lightDetector("test", 50)
	resolver.RegisterDetector(detector)

	var callbackCount int
	unregister := resolver.OnChange(func(port.ColorSchemePreference) {
		callbackCount++
	})

	resolver.Refresh(ctx)
	assert.Equal(t, 1, callbackCount)

	unregister()
	unregister()

	detector.set(theme.SchemeDark)
	resolver.Refresh(ctx)
	assert.Equal(t, 1, callbackCount)
}

func TestResolver_ConcurrentAccess(_ *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(&mockConfigProvider{scheme: "default"})
	resolver.RegisterDetector(lightDetector("test", 50))

	var wg sync.WaitGroup
	const goroutines = 10

	for i := 0; i < goroutines; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Resolve(ctx)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Refresh(ctx)
			}
		}()
		go func(id int) {
			defer wg.Done()
			resolver.RegisterDetector(&mockDetector{
				name:      "concurrent",
				priority:  id,
				available: true,
				scheme:    theme.Scheme(id % 2),
				detectOk:  true,
			})
		}(i)
	}

	wg.Wait()
}

func TestSystemThemeDetector(t *testing.T) {
	tests := []struct {
		name   string
		scheme theme.Scheme
		err    error
		want   theme.Scheme
		wantOk bool
	}{
		{name: "light", scheme: theme.SchemeLight, want: theme.SchemeLight, wantOk: true},
		{name: "dark", scheme: theme.SchemeDark, want: theme.SchemeDark, wantOk: true},
		{name: "unsupported defers", err: theme.ErrUnsupported},
		{name: "unavailable defers", err: theme.ErrUnavailable},
		{name: "platform error defers", err: theme.NewPlatformError(errors.New("bus gone"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSystemThemeDetector(schemeFunc(func() (theme.Scheme, error) {
				return tt.scheme, tt.err
			}))

			got, ok := d.Detect(context.Background())

			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	assert.False(t, NewSystemThemeDetector(nil).Available())
	assert.Equal(t, 100, NewSystemThemeDetector(nil).Priority())
}

type schemeFunc func() (theme.Scheme, error)

func (f schemeFunc) Scheme() (theme.Scheme, error) { return f() }

func TestEnvDetector(t *testing.T) {
	tests := []struct {
		value     string
		available bool
		want      theme.Scheme
	}{
		{value: "", available: false},
		{value: "Adwaita:dark", available: true, want: theme.SchemeDark},
		{value: "Breeze-Dark", available: true, want: theme.SchemeDark},
		{value: "Adwaita", available: true, want: theme.SchemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := &EnvDetector{getenv: func(string) string { return tt.value }}

			assert.Equal(t, tt.available, d.Available())
			got, ok := d.Detect(context.Background())
			assert.Equal(t, tt.available, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGsettingsDetector(t *testing.T) {
	tests := []struct {
		name    string
		outputs map[string]string
		want    theme.Scheme
		wantOk  bool
	}{
		{
			name:    "prefer-dark",
			outputs: map[string]string{"color-scheme": "'prefer-dark'\n"},
			want:    theme.SchemeDark,
			wantOk:  true,
		},
		{
			name:    "prefer-light",
			outputs: map[string]string{"color-scheme": "'prefer-light'\n"},
			want:    theme.SchemeLight,
			wantOk:  true,
		},
		{
			name:    "default follows gtk theme",
			outputs: map[string]string{"color-scheme": "'default'\n", "gtk-theme": "'Adwaita-dark'\n"},
			want:    theme.SchemeDark,
			wantOk:  true,
		},
		{
			name:    "missing key falls back to gtk theme",
			outputs: map[string]string{"gtk-theme": "'Yaru'\n"},
			want:    theme.SchemeLight,
			wantOk:  true,
		},
		{
			name:    "nothing readable",
			outputs: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls [][]string
			d := &GsettingsDetector{
				lookPath: func(string) (string, error) { return "/usr/bin/gsettings", nil },
				run: func(_ context.Context, name string, args ...string) ([]byte, error) {
					calls = append(calls, append([]string{name}, args...))
					out, ok := tt.outputs[args[len(args)-1]]
					if !ok {
						return nil, errors.New("exit status 1")
					}
					return []byte(out), nil
				},
			}

			require.True(t, d.Available())
			got, ok := d.Detect(context.Background())

			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
			require.NotEmpty(t, calls)
			assert.Equal(t, []string{"gsettings", "get", "org.gnome.desktop.interface", "color-scheme"}, calls[0])
		})
	}
}

func TestGsettingsDetector_Unavailable(t *testing.T) {
	d := &GsettingsDetector{lookPath: func(string) (string, error) { return "", errors.New("not found") }}
	assert.False(t, d.Available())
}

func TestParseOverride(t *testing.T) {
	values := []string{"dark", "prefer-dark", "light", "prefer-light", "default", ""}
	overrides := slices.DeleteFunc(slices.Clone(values), func(v string) bool {
		_, ok := ParseOverride(v)
		return !ok
	})
	assert.Equal(t, []string{"dark", "prefer-dark", "light", "prefer-light"}, overrides)
}
