package settings

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/xsync"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	for _, id := range KnownToggles {
		require.True(t, m.GetBool(id), id)
		require.Equal(t, Toggle(id), m.GetSetting(id))
	}

	require.False(t, m.GetBool("videoplayer.unknown"))
	require.Nil(t, m.GetSetting("videoplayer.unknown"))

	m.SetBool(UseVAAPIVC1, false)
	require.False(t, m.GetBool(UseVAAPIVC1))

	m.SetBool("custom.toggle", true)
	require.Equal(t, "custom.toggle", m.GetSetting("custom.toggle").ID())

	m.Delete(UseVDPAU)
	require.Nil(t, m.GetSetting(UseVDPAU))
}

func TestMemoryConcurrentReads(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range KnownToggles {
				m.GetBool(id)
				m.GetSetting(id)
			}
		}()
	}
	m.SetBool(UseVAAPI, false)
	wg.Wait()
	require.False(t, m.GetBool(UseVAAPI))
}

func TestViperDefaults(t *testing.T) {
	s, err := LoadViper("")
	require.NoError(t, err)
	for _, id := range KnownToggles {
		require.True(t, s.GetBool(id), id)
		require.NotNil(t, s.GetSetting(id), id)
	}
	require.Nil(t, s.GetSetting("videoplayer.unknown"))
}

func TestViperConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
videoplayer:
  usevaapimpeg2: false
  usevdpaumpeg4: false
  custom: true
`), 0o644))
	t.Setenv("AVHWGATE_VIDEOPLAYER_USEVAAPIVC1", "false")

	s, err := LoadViper(path)
	require.NoError(t, err)
	require.False(t, s.GetBool(UseVAAPIMPEG2))
	require.False(t, s.GetBool(UseVDPAUMPEG4))
	require.False(t, s.GetBool(UseVAAPIVC1))
	require.True(t, s.GetBool(UseVAAPIMPEG4))
	require.Equal(t, Toggle("videoplayer.custom"), s.GetSetting("videoplayer.custom"))
}

func TestViperMissingFile(t *testing.T) {
	_, err := LoadViper(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestMemoryReadsShareTheLock(t *testing.T) {
	m := NewMemory()
	done := make(chan bool)
	go func() {
		// a read nested in a held read lock completes only if reads are shared
		done <- xsync.RDoR1(context.Background(), &m.locker, func() bool {
			return m.GetBool(UseVAAPI) && m.GetSetting(UseVAAPI) != nil
		})
	}()
	select {
	case ok := <-done:
		require.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("a reader blocked another reader")
	}
}
