package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"wellness/config"
	"wellness/database"
	"wellness/history"
	"wellness/middleware"
	"wellness/risk"
	"wellness/router"
)

// @title 女性健康风险评估 API
// @version 1.0
// @description 基于问卷回答的多类别健康风险评估，支持历史趋势、导出与汇总邮件
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	profileName string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.StringVar(&profileName, "profile", "", "报告变体: dashboard 或 agent（覆盖配置）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("健康风险评估 v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}
	if profileName != "" {
		cfg.Risk.Profile = profileName
	}

	config.PrintConfig()

	// 启动时拟合全部类别模型，之后只读
	profile, err := risk.ParseProfile(cfg.Risk.Profile)
	if err != nil {
		log.Fatalf("报告变体无效: %v", err)
	}
	engine, err := risk.NewEngine(profile, risk.WithEscalationThreshold(cfg.Risk.EscalationThreshold))
	if err != nil {
		log.Fatalf("风险模型初始化失败: %v", err)
	}
	store := history.NewStore(cfg.Risk.HistoryCapacity,
		history.WithMaxSessions(cfg.Risk.MaxSessions),
		history.WithIdleTTL(cfg.Risk.SessionIdle),
	)
	stopSweeper := store.StartSweeper(10 * time.Minute)
	defer stopSweeper()

	// 初始化数据库
	if err := database.Init(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 初始化 JWT
	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg, engine, store)

	log.Printf("==========================================")
	log.Printf("  🌸 健康风险评估已启动 (变体: %s)", profile)
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
