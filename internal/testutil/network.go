// Package testutil 여러 패키지의 테스트에서 공통으로 사용하는 도구를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 테스트 서버가 사용할 수 있는 빈 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "빈 포트를 찾을 수 없습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForServer 서버가 port에서 연결을 받을 때까지 최대 timeout 동안 기다립니다.
func WaitForServer(t testing.TB, port int, timeout time.Duration) {
	t.Helper()

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, timeout, 10*time.Millisecond, "서버가 %s에서 시작되지 않았습니다", addr)
}
