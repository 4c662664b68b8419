package main

import (
	"fmt"
	"os"

	"Event_Showcase/internal/config"
	"Event_Showcase/internal/pkg"
)

// 签发主办方 token，拿到的 token 放 Authorization: Bearer 头访问 /api/organizer 接口
func main() {
	cfg := config.Load()

	token, err := pkg.GenerateOrganizerToken([]byte(cfg.OrganizerSecret))
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate token failed:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
