// Command token emite um token bearer para chamadas de serviço ou operação.
//
//	go run ./cmd/token -user ops-bot -permissions manage_analytics,view_analytics
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/vfg2006/logistics-analytics-api/internal/config"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
)

func main() {
	userID := flag.String("user", "", "identificador do usuário (obrigatório)")
	permissions := flag.String("permissions", "view_analytics", "permissões separadas por vírgula")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	token, err := authenticating.NewService(cfg.Auth).GenerateToken(*userID, splitPermissions(*permissions))
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao gerar token")
	}

	fmt.Println(token)
}

func splitPermissions(raw string) []string {
	var permissions []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			permissions = append(permissions, p)
		}
	}
	return permissions
}
