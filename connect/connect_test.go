package connect_test

import (
	"testing"
	"time"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/feedback/connect"
	"github.com/VinukaThejana/feedback/mailer"
	"github.com/VinukaThejana/feedback/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	var conn connect.Connector
	conn.InitRedis(&config.Env{RedisOTPURL: "redis://" + mr.Addr()})
	t.Cleanup(func() { conn.R.OTP.Close() })

	require.NotNil(t, conn.R)
	assert.NotNil(t, conn.R.OTP)
	assert.Nil(t, conn.R.System)
}

func TestInitOTPStore(t *testing.T) {
	mr := miniredis.RunT(t)

	t.Run("memory", func(t *testing.T) {
		var conn connect.Connector
		require.NoError(t, conn.InitOTPStore(&config.Env{OTPStore: "memory"}))
		assert.IsType(t, &store.Memory{}, conn.OTP)
	})

	t.Run("redis", func(t *testing.T) {
		env := &config.Env{
			OTPStore:    "redis",
			RedisOTPURL: "redis://" + mr.Addr(),
			OTPValidity: 5 * time.Minute,
		}

		var conn connect.Connector
		require.Error(t, conn.InitOTPStore(env))

		conn.InitRedis(env)
		t.Cleanup(func() { conn.R.OTP.Close() })
		require.NoError(t, conn.InitOTPStore(env))

		s, ok := conn.OTP.(*store.Redis)
		require.True(t, ok)
		assert.Equal(t, 5*time.Minute, s.TTL)
	})

	t.Run("postgres without a database", func(t *testing.T) {
		var conn connect.Connector
		conn.InitDatabase(&config.Env{})
		assert.Nil(t, conn.DB)
		assert.Error(t, conn.InitOTPStore(&config.Env{OTPStore: "postgres"}))
	})

	t.Run("unknown", func(t *testing.T) {
		var conn connect.Connector
		assert.Error(t, conn.InitOTPStore(&config.Env{OTPStore: "sqlite"}))
	})
}

func TestInitMailer(t *testing.T) {
	args := []struct {
		mailer string
		want   mailer.Mailer
	}{
		{"smtp", &mailer.SMTP{}},
		{"resend", &mailer.Resend{}},
		{"log", mailer.Log{}},
	}

	for _, arg := range args {
		var conn connect.Connector
		require.NoError(t, conn.InitMailer(&config.Env{Mailer: arg.mailer}))
		assert.IsType(t, arg.want, conn.Mailer)
	}

	var conn connect.Connector
	assert.Error(t, conn.InitMailer(&config.Env{Mailer: "pigeon"}))
}

func TestInitMailerSMTPSender(t *testing.T) {
	var conn connect.Connector
	require.NoError(t, conn.InitMailer(&config.Env{
		Mailer:       "smtp",
		SMTPServer:   "smtp.gmail.com",
		SMTPPort:     587,
		SMTPUsername: "noreply@x.com",
		SMTPUseTLS:   true,
	}))

	m, ok := conn.Mailer.(*mailer.SMTP)
	require.True(t, ok)
	assert.Equal(t, "noreply@x.com", m.From)
	assert.Equal(t, 587, m.Port)
	assert.True(t, m.UseTLS)
}

func TestRatelimiterStorage(t *testing.T) {
	var conn connect.Connector
	conn.InitRatelimiter(&config.Env{})

	assert.Nil(t, conn.Ratelimiter)
	assert.Nil(t, conn.RatelimiterStorage())
}
