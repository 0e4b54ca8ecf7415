/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

import (
	"strconv"

	v "github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	JESSICA_CONFIGNAME = "jessica"
	JESSICA_ENV_PREFIX = "JESSICA"
	JESSICA_VERSION    = `0.1.0`
)

type JessicaConfig struct {
	Viper *v.Viper `yaml:"-" json:"-"`

	General JessicaGeneral `mapstructure:"general" json:"general,omitempty" yaml:"general,omitempty"`
	Logging JessicaLogging `mapstructure:"logging" json:"logging,omitempty" yaml:"logging,omitempty"`
	Views   JessicaViews   `mapstructure:"views" json:"views,omitempty" yaml:"views,omitempty"`
	Loader  JessicaLoader  `mapstructure:"loader" json:"loader,omitempty" yaml:"loader,omitempty"`
}

type JessicaGeneral struct {
	Debug bool `mapstructure:"debug,omitempty" json:"debug,omitempty" yaml:"debug,omitempty"`
}

type JessicaLogging struct {
	// Path of the logfile
	Path string `mapstructure:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	// Enable/Disable logging to file
	EnableLogFile bool `mapstructure:"enable_logfile,omitempty" json:"enable_logfile,omitempty" yaml:"enable_logfile,omitempty"`
	// Enable JSON format logging in file
	JsonFormat bool `mapstructure:"json_format,omitempty" json:"json_format,omitempty" yaml:"json_format,omitempty"`

	// Log level
	Level string `mapstructure:"level,omitempty" json:"level,omitempty" yaml:"level,omitempty"`

	// Enable emoji
	EnableEmoji bool `mapstructure:"enable_emoji,omitempty" json:"enable_emoji,omitempty" yaml:"enable_emoji,omitempty"`
	// Enable/Disable color in logging
	Color bool `mapstructure:"color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
}

// JessicaViews describes where partials live. Path selects a single
// directory, Paths an ordered search list.
type JessicaViews struct {
	Path   string   `mapstructure:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	Paths  []string `mapstructure:"paths,omitempty" json:"paths,omitempty" yaml:"paths,omitempty"`
	Engine string   `mapstructure:"engine,omitempty" json:"engine,omitempty" yaml:"engine,omitempty"`
}

type JessicaLoader struct {
	// Backend used to read templates: dir|s3|http
	Backend string      `mapstructure:"backend,omitempty" json:"backend,omitempty" yaml:"backend,omitempty"`
	Dir     JessicaDir  `mapstructure:"dir,omitempty" json:"dir,omitempty" yaml:"dir,omitempty"`
	S3      JessicaS3   `mapstructure:"s3,omitempty" json:"s3,omitempty" yaml:"s3,omitempty"`
	Http    JessicaHttp `mapstructure:"http,omitempty" json:"http,omitempty" yaml:"http,omitempty"`
}

type JessicaDir struct {
	Root string `mapstructure:"root,omitempty" json:"root,omitempty" yaml:"root,omitempty"`
}

type JessicaS3 struct {
	Endpoint string `mapstructure:"endpoint,omitempty" json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Bucket   string `mapstructure:"bucket,omitempty" json:"bucket,omitempty" yaml:"bucket,omitempty"`
	KeyId    string `mapstructure:"keyid,omitempty" json:"keyid,omitempty" yaml:"keyid,omitempty"`
	Secret   string `mapstructure:"secret,omitempty" json:"-" yaml:"-"`
	Region   string `mapstructure:"region,omitempty" json:"region,omitempty" yaml:"region,omitempty"`
	Prefix   string `mapstructure:"prefix,omitempty" json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Ssl      bool   `mapstructure:"ssl,omitempty" json:"ssl,omitempty" yaml:"ssl,omitempty"`
}

type JessicaHttp struct {
	BaseUrl     string `mapstructure:"base_url,omitempty" json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Ssl         bool   `mapstructure:"ssl,omitempty" json:"ssl,omitempty" yaml:"ssl,omitempty"`
	Retries     int    `mapstructure:"retries,omitempty" json:"retries,omitempty" yaml:"retries,omitempty"`
	ReqsTimeout int    `mapstructure:"reqs_timeout,omitempty" json:"reqs_timeout,omitempty" yaml:"reqs_timeout,omitempty"`
	UserAgent   string `mapstructure:"user_agent,omitempty" json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

func NewJessicaConfig(viper *v.Viper) *JessicaConfig {
	if viper == nil {
		viper = v.New()
	}

	GenDefault(viper)
	return &JessicaConfig{Viper: viper}
}

func (c *JessicaConfig) GetGeneral() *JessicaGeneral { return &c.General }
func (c *JessicaConfig) GetLogging() *JessicaLogging { return &c.Logging }
func (c *JessicaConfig) GetViews() *JessicaViews     { return &c.Views }
func (c *JessicaConfig) GetLoader() *JessicaLoader   { return &c.Loader }

func (c *JessicaConfig) Unmarshal() error {
	err := c.Viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return err
		}
		// else: Config file not found; ignore error
	}

	return c.Viper.Unmarshal(&c)
}

func (c *JessicaConfig) Yaml() ([]byte, error) {
	return yaml.Marshal(c)
}

// ViewSettings returns the view settings of the configuration or nil when
// no view directory is configured.
func (c *JessicaConfig) ViewSettings() *ViewSettings {
	views := c.GetViews()
	switch {
	case len(views.Paths) > 0:
		return NewViewSearch(views.Engine, views.Paths...)
	case views.Path != "":
		return NewViewDir(views.Path, views.Engine)
	default:
		return nil
	}
}

// LoaderOpts converts the loader section into the options map consumed by
// the loader factory.
func (c *JessicaConfig) LoaderOpts() map[string]string {
	l := c.GetLoader()
	ans := make(map[string]string, 0)

	setIf := func(k, val string) {
		if val != "" {
			ans[k] = val
		}
	}

	setIf("dir-root", l.Dir.Root)

	setIf("minio-endpoint", l.S3.Endpoint)
	setIf("minio-bucket", l.S3.Bucket)
	setIf("minio-keyid", l.S3.KeyId)
	setIf("minio-secret", l.S3.Secret)
	setIf("minio-region", l.S3.Region)
	setIf("minio-prefix", l.S3.Prefix)
	ans["minio-ssl"] = strconv.FormatBool(l.S3.Ssl)

	setIf("http-base-url", l.Http.BaseUrl)
	setIf("http-user-agent", l.Http.UserAgent)
	ans["http-ssl"] = strconv.FormatBool(l.Http.Ssl)
	ans["http-retries"] = strconv.Itoa(l.Http.Retries)
	if l.Http.ReqsTimeout > 0 {
		ans["http-timeout"] = strconv.Itoa(l.Http.ReqsTimeout)
	}

	return ans
}

func GenDefault(viper *v.Viper) {
	viper.SetDefault("general.debug", false)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.enable_logfile", false)
	viper.SetDefault("logging.path", "/var/log/macaroni/jessica.log")
	viper.SetDefault("logging.json_format", false)
	viper.SetDefault("logging.enable_emoji", true)
	viper.SetDefault("logging.color", true)

	viper.SetDefault("views.path", "")
	viper.SetDefault("views.paths", []string{})
	viper.SetDefault("views.engine", "")

	viper.SetDefault("loader.backend", "dir")
	viper.SetDefault("loader.dir.root", "")
	viper.SetDefault("loader.s3.endpoint", "")
	viper.SetDefault("loader.s3.bucket", "")
	viper.SetDefault("loader.s3.keyid", "")
	viper.SetDefault("loader.s3.secret", "")
	viper.SetDefault("loader.s3.region", "")
	viper.SetDefault("loader.s3.prefix", "")
	viper.SetDefault("loader.s3.ssl", true)
	viper.SetDefault("loader.http.base_url", "")
	viper.SetDefault("loader.http.ssl", true)
	viper.SetDefault("loader.http.retries", 2)
	viper.SetDefault("loader.http.reqs_timeout", 120)
	viper.SetDefault("loader.http.user_agent", "Jessica Template Engine")
}

func (g *JessicaGeneral) HasDebug() bool {
	return g.Debug
}
