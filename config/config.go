package config

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Cache  CacheConfig
	Sweep  SweepConfig
	Export ExportConfig
	Log    LogConfig
}

type ServerConfig struct {
	Addr            string
	WsPath          string
	MetricsPath     string
	ReadBufferSize  int
	WriteBufferSize int
	// 单条 websocket 消息的最大字节数
	ReadLimit int64
}

type StoreConfig struct {
	Enabled bool
	Path    string
}

type CacheConfig struct {
	Enabled bool
	Addr    string
	DB      int
	TTL     time.Duration
}

type SweepConfig struct {
	Workers int
	MaxKVs  int
}

type ExportConfig struct {
	Dir    string
	Format string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load 读取配置文件, 文件不存在时使用默认值
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithField("path", path).Warn("配置文件不存在, 使用默认配置")
		return loadCfg(ini.Empty()), nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) Config {
	server := file.Section("server")
	store := file.Section("store")
	cache := file.Section("cache")
	sweep := file.Section("sweep")
	export := file.Section("export")
	logSec := file.Section("log")

	return Config{
		Server: ServerConfig{
			Addr:            server.Key("Addr").MustString(":9000"),
			WsPath:          server.Key("WsPath").MustString("/ws"),
			MetricsPath:     server.Key("MetricsPath").MustString("/metrics"),
			ReadBufferSize:  server.Key("ReadBufferSize").MustInt(1024),
			WriteBufferSize: server.Key("WriteBufferSize").MustInt(1024),
			ReadLimit:       server.Key("ReadLimit").MustInt64(64 * 1024),
		},
		Store: StoreConfig{
			Enabled: store.Key("Enabled").MustBool(false),
			Path:    store.Key("Path").MustString("data/designs.db"),
		},
		Cache: CacheConfig{
			Enabled: cache.Key("Enabled").MustBool(false),
			Addr:    cache.Key("Addr").MustString("127.0.0.1:6379"),
			DB:      cache.Key("DB").MustInt(0),
			TTL:     cache.Key("TTL").MustDuration(24 * time.Hour),
		},
		Sweep: SweepConfig{
			Workers: sweep.Key("Workers").MustInt(4),
			MaxKVs:  sweep.Key("MaxKVs").MustInt(1000),
		},
		Export: ExportConfig{
			Dir:    export.Key("Dir").MustString("export"),
			Format: export.Key("Format").MustString("json"),
		},
		Log: LogConfig{
			Level:  logSec.Key("Level").MustString("info"),
			Format: logSec.Key("Format").MustString("text"),
		},
	}
}

// SetupLogger applies the [log] section to the standard logrus logger.
func SetupLogger(cfg LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return nil
}
