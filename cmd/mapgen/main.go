package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"

	"killercritters/internal/preview"
	"killercritters/pkg/core"
)

func main() {
	var (
		width  = flag.Int("width", core.DefaultMapWidth, "地图宽度（格子）")
		height = flag.Int("height", core.DefaultMapHeight, "地图高度（格子）")
		seed   = flag.Int64("seed", time.Now().UnixNano(), "随机种子")
		plain  = flag.Bool("plain", false, "输出纯文本")
		clip   = flag.Bool("clip", false, "把纯文本地图复制到剪贴板")
	)
	flag.Parse()

	grid, err := core.MakeBasicMap(*width, *height, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}

	if *plain {
		fmt.Println(preview.Plain(grid))
	} else {
		fmt.Println(preview.Render(grid, *seed))
	}

	if *clip {
		if err := clipboard.WriteAll(preview.Plain(grid)); err != nil {
			log.Fatalf("复制到剪贴板失败: %v", err)
		}
		log.Printf("已复制到剪贴板")
	}
}
