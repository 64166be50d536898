package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("无配置文件使用默认值", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenExpire)
		assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenExpire)
		assert.False(t, cfg.MQ.Enabled)
		assert.Equal(t, "topic", cfg.MQ.ExchangeType)
	})

	t.Run("读取YAML并被环境变量覆盖", func(t *testing.T) {
		dir := t.TempDir()
		yaml := []byte(`
server:
  port: 9090
database:
  driver: mysql
  host: db
  port: 3306
  dbname: bookstore
jwt:
  secret: from-file
`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
		t.Setenv("BOOKSTORE_JWT_SECRET", "from-env")
		t.Setenv("BOOKSTORE_DATABASE_PORT", "3307")

		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, DriverMySQL, cfg.Database.Driver)
		assert.Equal(t, 3307, cfg.Database.Port)
		assert.Equal(t, "from-env", cfg.JWT.Secret)
	})

	t.Run("非法驱动", func(t *testing.T) {
		t.Setenv("BOOKSTORE_DATABASE_DRIVER", "oracle")

		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "database")
	})

	t.Run("release模式必须修改JWT密钥", func(t *testing.T) {
		t.Setenv("BOOKSTORE_SERVER_MODE", "release")

		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "jwt")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "mysql",
			cfg: DatabaseConfig{Driver: DriverMySQL, User: "root", Password: "pw", Host: "db", Port: 3306,
				DBName: "bookstore", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai"},
			want: "root:pw@tcp(db:3306)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai",
		},
		{
			name: "postgres",
			cfg: DatabaseConfig{Driver: DriverPostgres, User: "postgres", Password: "pw", Host: "db", Port: 5432,
				DBName: "bookstore", SSLMode: "disable"},
			want: "host=db port=5432 user=postgres password=pw dbname=bookstore sslmode=disable",
		},
		{
			name: "sqlite",
			cfg:  DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"},
			want: ":memory:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestConfig_Validate_Admin(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	cfg.Admin = AdminConfig{Username: "admin", Email: "not-an-email", Password: "secret1"}
	assert.ErrorContains(t, cfg.Validate(), "admin")

	cfg.Admin.Email = "admin@bookstore.dev"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_CORS(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)

	cfg.CORS.Enabled = true
	assert.NoError(t, cfg.Validate())

	cfg.CORS.AllowCredentials = true
	assert.ErrorContains(t, cfg.Validate(), "cors")

	cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	assert.NoError(t, cfg.Validate())
}
