// Command seed creates the analytics tables on DynamoDB Local and fills them
// with a few months of demo estimates.
package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"npc_garage/internal/adapter/persistence/repository"
	"npc_garage/internal/config"
	"npc_garage/internal/domain/entities"
	"npc_garage/internal/infrastructure/database"
	"npc_garage/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("")
		l.Fatal().Err(err).Msg("[seed] invalid configuration")
	}
	log := logger.New(cfg.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("[seed] failed")
		os.Exit(1)
	}
	log.Info().Msg("[seed] done")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	for _, table := range []string{cfg.Tables.Estimates, cfg.Tables.Stock, cfg.Tables.Mechanics} {
		if err := ensureTable(ctx, ddb, table); err != nil {
			return err
		}
		log.Info().Str("table", table).Msg("[seed] table ready")
	}

	mechanics := []entities.Mechanic{
		{ID: seedID("mechanic", "Carlos Souza"), Name: "Carlos Souza"},
		{ID: seedID("mechanic", "Marina Lima"), Name: "Marina Lima"},
		{ID: seedID("mechanic", "Rafael Costa"), Name: "Rafael Costa"},
	}
	stock := []entities.StockItem{
		{ID: seedID("stock", "Oil filter"), Name: "Oil filter", PurchasePrice: 18},
		{ID: seedID("stock", "Brake pad set"), Name: "Brake pad set", PurchasePrice: 95},
		{ID: seedID("stock", "Spark plug"), Name: "Spark plug", PurchasePrice: 12.5},
		{ID: seedID("stock", "Synthetic oil 1L"), Name: "Synthetic oil 1L", PurchasePrice: 32},
	}

	mechanicRepo := repository.NewMechanicDynamoRepository(ddb, cfg.Tables.Mechanics)
	for _, m := range mechanics {
		if _, err := mechanicRepo.Create(ctx, m); err != nil && !errors.Is(err, repository.ErrItemExists) {
			return err
		}
	}
	stockRepo := repository.NewStockDynamoRepository(ddb, cfg.Tables.Stock)
	for _, s := range stock {
		if _, err := stockRepo.Create(ctx, s); err != nil && !errors.Is(err, repository.ErrItemExists) {
			return err
		}
	}

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.Tables.Estimates)
	estimates := demoEstimates(time.Now(), mechanics, stock)
	for _, e := range estimates {
		if _, err := estimateRepo.Create(ctx, e); err != nil && !errors.Is(err, repository.ErrItemExists) {
			return err
		}
	}
	log.Info().
		Int("mechanics", len(mechanics)).
		Int("stock", len(stock)).
		Int("estimates", len(estimates)).
		Msg("[seed] items written")
	return nil
}

// seedNamespace scopes the name-based ids. Reruns write the same keys and
// land on ErrItemExists.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("npc_garage/seed"))

func seedID(kind, name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+"/"+name)).String()
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, name string) error {
	_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if err != nil && !errors.As(err, &inUse) {
		return err
	}
	return nil
}

// demoEstimates spreads a repeating set of visits over the last six months.
// Some customers come back so that segmentation has recurring clients.
func demoEstimates(now time.Time, mechanics []entities.Mechanic, stock []entities.StockItem) []entities.Estimate {
	customers := []entities.Customer{
		{Name: "Joao Pereira", Phone: "+55 11 91234-0001"},
		{Name: "Ana Ribeiro", Email: "ana.ribeiro@example.com"},
		{Name: "Pedro Alves", Phone: "+55 11 91234-0003"},
		{Name: "Lucia Ramos"},
	}
	ten := 10.0
	five := 5.0
	statuses := []entities.EstimateStatus{
		entities.EstimateStatusCompleted,
		entities.EstimateStatusCompleted,
		entities.EstimateStatusAwaitingPayment,
		entities.EstimateStatusCompleted,
		entities.EstimateStatusDraft,
	}

	var out []entities.Estimate
	for i := 0; i < 24; i++ {
		date := now.AddDate(0, 0, -7*i)
		e := entities.Estimate{
			ID:       seedID("estimate", strconv.Itoa(i)),
			Date:     date,
			Status:   statuses[i%len(statuses)],
			Customer: customers[i%len(customers)],
			Parts: []entities.Part{
				{Name: stock[i%len(stock)].Name, Quantity: float64(1 + i%3), Price: stock[i%len(stock)].PurchasePrice * 1.6, StockID: stock[i%len(stock)].ID},
				{Name: "Shop supplies", Quantity: 1, Price: 15},
			},
			Labor: []entities.LaborLine{
				{Description: laborFor(i), Hours: float64(1 + i%4), Rate: 120},
			},
			MechanicIDs: []string{mechanics[i%len(mechanics)].ID},
		}
		if i%4 == 0 {
			e.PartsDiscountPercent = &ten
		}
		if i%6 == 0 {
			e.LaborDiscountPercent = &five
			e.MechanicIDs = append(e.MechanicIDs, mechanics[(i+1)%len(mechanics)].ID)
		}
		out = append(out, e)
	}
	return out
}

func laborFor(i int) string {
	services := []string{"Oil change", "Brake service", "Engine diagnostics", "Tune-up"}
	return services[i%len(services)]
}
