package configwatcher

import (
	"concept_tutor_backend/internal/config"
	"concept_tutor_backend/pkg/logger"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type ConfigReloader func(cfg *config.Config)

// 密集写事件合并为一次重载的去抖窗口
const reloadDebounce = 1 * time.Second

func WatchConfig(configPath string, reloader ConfigReloader) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("Failed to create config watcher:", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		log.Fatal("Failed to get absolute path:", err)
	}

	if err := watcher.Add(absPath); err != nil {
		log.Fatal("Failed to watch config file:", err)
	}

	watchLoop(watcher.Events, watcher.Errors, reloadDebounce, func() {
		// 重新加载配置
		dirPath := filepath.Dir(configPath)
		newCfg, err := config.LoadConfig(dirPath)
		if err != nil {
			logger.Log.Error("Failed to reload config", zap.Error(err))
			return
		}
		reloader(newCfg)
	})
}

// watchLoop 事件去抖循环，事件通道关闭时退出
// 定时器触发后直接Reset即可重新计时，无需排空通道（go1.23起的定时器语义）
func watchLoop(events <-chan fsnotify.Event, errs <-chan error, debounce time.Duration, reload func()) {
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				timer.Reset(debounce)
			}
		case <-timer.C:
			reload()
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
