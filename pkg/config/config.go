/*
 * @Description: 统一配置管理 (手动加载，文件默认值 + 环境变量覆盖)
 * @Author: 安知鱼
 * @Date: 2026-03-02 10:35:40
 * @LastEditTime: 2026-05-06 14:21:09
 * @LastEditors: 安知鱼
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyUploadMaxSizeMB, KeyUploadMaxBatchFiles,
	KeyAIEnabled, KeyAIEndpoint, KeyAITimeoutSeconds,
}

const (
	KeyServerPort    = "System.Port"
	KeyServerDebug   = "System.Debug"
	KeyDBType        = "Database.Type"
	KeyDBHost        = "Database.Host"
	KeyDBPort        = "Database.Port"
	KeyDBUser        = "Database.User"
	KeyDBPassword    = "Database.Password"
	KeyDBName        = "Database.Name"
	KeyDBDebug       = "Database.Debug"
	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"

	// 上传与批处理限制
	KeyUploadMaxSizeMB     = "Upload.MaxSizeMB"
	KeyUploadMaxBatchFiles = "Upload.MaxBatchFiles"

	// 外部 AI 分析服务
	KeyAIEnabled        = "AI.Enabled"
	KeyAIEndpoint       = "AI.Endpoint"
	KeyAITimeoutSeconds = "AI.TimeoutSeconds"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 手动加载配置：先读 data/conf.ini 作为默认值，再用环境变量逐键覆盖。
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	// --- 步骤 1: 使用 go-ini 从文件加载配置 (作为默认值) ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	// 如果文件成功加载，则将其中的值全部设置到 Viper 中
	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("从 data/conf.ini 文件加载了默认配置。")
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "PICMETA"

	for _, key := range allKeys {
		// 构建环境变量名，例如 PICMETA_UPLOAD_MAXSIZEMB
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))

		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// MaxUploadBytes 返回单文件大小上限（字节）。未配置时默认 50MB。
func (c *Config) MaxUploadBytes() int64 {
	mb := c.vp.GetInt64(KeyUploadMaxSizeMB)
	if mb <= 0 {
		mb = 50
	}
	return mb << 20
}

// MaxBatchFiles 返回单次批量调用允许的文件数。未配置时默认 10。
func (c *Config) MaxBatchFiles() int {
	n := c.vp.GetInt(KeyUploadMaxBatchFiles)
	if n <= 0 {
		n = 10
	}
	return n
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	// 默认配置内容（使用 SQLite 作为默认数据库）
	defaultConfig := `[System]
Port = 8093
Debug = false

[Database]
Type = sqlite
Name = picmeta_app.db
Debug = false

# Redis 配置（可选）
# 如果不配置或留空 Addr，去重索引与热门关键词缓存将直接退化为数据库查询
[Redis]
Addr =
Password =
DB = 0

[Upload]
MaxSizeMB = 50
MaxBatchFiles = 10

# 外部 AI 图像分析服务（可选）
# Enabled = false 时使用内置的占位分析器
[AI]
Enabled = false
Endpoint =
TimeoutSeconds = 15
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}
