package main

// Populate a database with demo teams, projects and screens:
//   go run ./cmd/seed

import (
	"context"
	"errors"
	"log"
	"os"

	"studio-backend/internal/bootstrap"
	"studio-backend/internal/projects"
	"studio-backend/internal/shared/config"
	"studio-backend/internal/teams"
)

type projectSeed struct {
	name  string
	files []string
}

type teamSeed struct {
	name     string
	projects []projectSeed
}

var teamSeeds = []teamSeed{
	{
		name: "Comercial",
		projects: []projectSeed{
			{name: "Pipeline de Vendas", files: []string{"Dashboard", "Kanban de Oportunidades", "Detalhe da Oportunidade", "Metas e Previsão"}},
			{name: "Cadastro de Leads", files: []string{"Lista de Leads", "Novo Lead", "Detalhe do Lead", "Importação de Leads"}},
			{name: "CRM de Clientes", files: []string{"Visão Geral do Cliente", "Contatos", "Histórico de Interações", "Tarefas e Follow-up", "Documentos"}},
		},
	},
	{
		name: "Financeiro",
		projects: []projectSeed{
			{name: "Fluxo de Caixa", files: []string{"Dashboard", "Lançamentos", "Conciliação", "Projeções"}},
			{name: "Contas a Pagar", files: []string{"Lista de Títulos", "Novo Título", "Agenda de Pagamentos"}},
		},
	},
	{
		name: "Operações",
		projects: []projectSeed{
			{name: "Gestão de Estoque", files: []string{"Posição de Estoque", "Entradas", "Saídas", "Inventário"}},
		},
	},
}

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Printf("seed requires DATABASE_URL")
		os.Exit(1)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Printf("bootstrap error: %v", err)
		os.Exit(1)
	}
	defer func() {
		if app.DB != nil {
			app.DB.Close()
		}
	}()

	ctx := context.Background()
	for _, ts := range teamSeeds {
		team, err := app.TeamsService.Create(ctx, ts.name)
		if err != nil {
			if errors.Is(err, teams.ErrAlreadyExists) {
				log.Printf("seed: team %q already exists, skipping", ts.name)
				continue
			}
			log.Printf("seed: create team %q: %v", ts.name, err)
			os.Exit(1)
		}

		for _, ps := range ts.projects {
			project, err := app.ProjectsService.Create(ctx, team.ID, ps.name, "")
			if err != nil {
				if errors.Is(err, projects.ErrAlreadyExists) {
					log.Printf("seed: project %q already exists, skipping", ps.name)
					continue
				}
				log.Printf("seed: create project %q: %v", ps.name, err)
				os.Exit(1)
			}

			for _, fileName := range ps.files {
				if _, err := app.FilesService.Create(ctx, project.ID, fileName, "blank"); err != nil {
					log.Printf("seed: create file %q: %v", fileName, err)
					os.Exit(1)
				}
			}
		}
		log.Printf("seed: team %q ready", ts.name)
	}
}
