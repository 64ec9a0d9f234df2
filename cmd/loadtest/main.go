package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

const (
	idempotencyHeader = "idempotency-key"
	clientKeyHeader   = "x-forwarded-for"

	defaultPriceMinor = int64(1000)
	defaultQty        = int32(1)
)

type loadMode string

const (
	modeCreate       loadMode = "create"
	modeCreateCancel loadMode = "create-cancel"
	// modeRateLimit нагружает сервер от имени нескольких синтетических
	// клиентов и показывает распределение ResourceExhausted по кодам.
	modeRateLimit loadMode = "ratelimit"
)

type config struct {
	addr        string
	total       int
	totalSet    bool
	duration    time.Duration
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	cancelRate  int
	qty         int32
	priceMinor  int64
	stock       int
	clientKeys  int
	verify      bool
	userTag     string
	outputPath  string
}

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	Rejected  int64            `json:"rejected"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"duration_seconds"`
	TotalScenarios    int64                   `json:"total_scenarios"`
	SuccessScenarios  int64                   `json:"success_scenarios"`
	FailedScenarios   int64                   `json:"failed_scenarios"`
	ErrorRate         float64                 `json:"error_rate"`
	RPS               float64                 `json:"rps"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"methods"`
}

type methodStats struct {
	calls     int64
	success   int64
	failed    int64
	rejected  int64
	codes     map[string]int64
	latencies []float64
}

type collector struct {
	mu      sync.Mutex
	methods map[string]*methodStats
}

func newCollector() *collector {
	return &collector{
		methods: make(map[string]*methodStats),
	}
}

// record учитывает один вызов. rejected — бизнес-отказ: транспортный код OK,
// но success=false в теле ответа.
func (c *collector) record(method string, latency time.Duration, code codes.Code, rejected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[method]
	if !ok {
		stats = &methodStats{
			codes: make(map[string]int64),
		}
		c.methods[method] = stats
	}

	stats.calls++
	switch {
	case code != codes.OK:
		stats.failed++
	case rejected:
		stats.rejected++
	default:
		stats.success++
	}
	stats.codes[code.String()]++
	stats.latencies = append(stats.latencies, float64(latency.Microseconds())/1000.0)
}

func (c *collector) snapshot(name string) (methodReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[name]
	if !ok {
		return methodReport{}, false
	}
	return buildMethodReport(stats), true
}

func buildMethodReport(stats *methodStats) methodReport {
	codesCopy := make(map[string]int64, len(stats.codes))
	for code, count := range stats.codes {
		codesCopy[code] = count
	}

	return methodReport{
		Calls:     stats.calls,
		Success:   stats.success,
		Failed:    stats.failed,
		Rejected:  stats.rejected,
		ErrorRate: ratio(stats.failed, stats.calls),
		Codes:     codesCopy,
		LatencyMs: buildLatencySummary(stats.latencies),
	}
}

func (c *collector) buildReport(startedAt time.Time, duration time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: duration.Seconds(),
		Methods:         make(map[string]methodReport, len(c.methods)),
	}

	scenarioStats := c.methods["scenario"]
	if scenarioStats != nil {
		result.TotalScenarios = scenarioStats.calls
		result.SuccessScenarios = scenarioStats.success
		result.FailedScenarios = scenarioStats.failed + scenarioStats.rejected
		result.ErrorRate = ratio(result.FailedScenarios, scenarioStats.calls)
		result.ScenarioLatencyMs = buildLatencySummary(scenarioStats.latencies)
	}
	if duration > 0 {
		result.RPS = float64(result.TotalScenarios) / duration.Seconds()
	}

	for name, stats := range c.methods {
		result.Methods[name] = buildMethodReport(stats)
	}

	return result
}

func parseConfig() (config, error) {
	var cfg config
	var modeValue string
	var timeoutValue string
	var durationValue string

	flag.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	flag.IntVar(&cfg.total, "total", 400, "total scenarios to execute in count mode; in duration mode only used when explicitly set")
	flag.StringVar(&durationValue, "duration", "0s", "optional time-based run duration (e.g. 10m, 15m)")
	flag.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	flag.IntVar(&cfg.connections, "connections", 20, "number of gRPC client connections")
	flag.StringVar(&timeoutValue, "timeout", "5s", "per-RPC timeout")
	flag.StringVar(&modeValue, "mode", string(modeCreate), "load mode: create | create-cancel | ratelimit")
	flag.IntVar(&cfg.cancelRate, "cancel-rate", 100, "cancel probability in percent for create-cancel mode (0..100)")
	flag.IntVar(&cfg.stock, "stock", 0, "initial product stock (0 = sized to the run)")
	flag.IntVar(&cfg.clientKeys, "client-keys", 4, "number of synthetic x-forwarded-for clients in ratelimit mode")
	flag.BoolVar(&cfg.verify, "verify", false, "fetch each created order back via GetOrder to load the read path")
	qty := flag.Int("qty", int(defaultQty), "items per order")
	flag.Int64Var(&cfg.priceMinor, "price-minor", defaultPriceMinor, "product price in minor units")
	flag.StringVar(&cfg.userTag, "user-tag", "load", "username prefix for the generated user")
	flag.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	flag.Parse()

	cfg.qty = int32(*qty)

	timeout, err := time.ParseDuration(strings.TrimSpace(timeoutValue))
	if err != nil {
		return cfg, fmt.Errorf("parse timeout: %w", err)
	}
	cfg.timeout = timeout

	duration, err := time.ParseDuration(strings.TrimSpace(durationValue))
	if err != nil {
		return cfg, fmt.Errorf("parse duration: %w", err)
	}
	cfg.duration = duration

	flag.CommandLine.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode

	if cfg.duration < 0 {
		return cfg, errors.New("duration must be >= 0")
	}
	if cfg.duration == 0 && cfg.total <= 0 {
		return cfg, errors.New("total must be > 0 when duration is not set")
	}
	if cfg.duration > 0 && cfg.totalSet && cfg.total <= 0 {
		return cfg, errors.New("total must be > 0 when explicitly set with duration")
	}
	if cfg.concurrency <= 0 {
		return cfg, errors.New("concurrency must be > 0")
	}
	if cfg.connections <= 0 {
		return cfg, errors.New("connections must be > 0")
	}
	if cfg.timeout <= 0 {
		return cfg, errors.New("timeout must be > 0")
	}
	if cfg.qty <= 0 {
		return cfg, errors.New("qty must be > 0")
	}
	if cfg.priceMinor <= 0 {
		return cfg, errors.New("price-minor must be > 0")
	}
	if cfg.stock < 0 {
		return cfg, errors.New("stock must be >= 0")
	}
	if cfg.cancelRate < 0 || cfg.cancelRate > 100 {
		return cfg, errors.New("cancel-rate must be between 0 and 100")
	}
	if cfg.mode == modeRateLimit && cfg.clientKeys <= 0 {
		return cfg, errors.New("client-keys must be > 0 in ratelimit mode")
	}
	if strings.TrimSpace(cfg.userTag) == "" {
		return cfg, errors.New("user-tag is required")
	}

	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch loadMode(strings.TrimSpace(value)) {
	case modeCreate:
		return modeCreate, nil
	case modeCreateCancel:
		return modeCreateCancel, nil
	case modeRateLimit:
		return modeRateLimit, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s (use create | create-cancel | ratelimit)", value)
	}
}

// fixture — пользователь и товар, под которыми идут все сценарии прогона.
type fixture struct {
	userID    string
	productID string
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	clients := make([]commercev1.OrderServiceClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc client connection: %v\n", dialErr)
			os.Exit(1)
		}
		conns = append(conns, conn)
		clients = append(clients, commercev1.NewOrderServiceClient(conn))
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	startedAt := time.Now()
	runID := fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid())

	fx, err := prepareFixture(conns[0], cfg, runID)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to prepare run fixture: %v\n", err)
		os.Exit(1)
	}

	col := newCollector()

	jobs := make(chan int, cfg.concurrency*2)
	var failures int64
	var wg sync.WaitGroup

	for workerID := 0; workerID < cfg.concurrency; workerID++ {
		wg.Add(1)
		client := clients[workerID%len(clients)]
		go func(cli commercev1.OrderServiceClient) {
			defer wg.Done()
			for id := range jobs {
				if runErr := runScenario(cli, cfg, fx, id, runID, col); runErr != nil {
					atomic.AddInt64(&failures, 1)
				}
			}
		}(client)
	}

	dispatchJobs(jobs, cfg)
	wg.Wait()

	duration := time.Since(startedAt)
	result := col.buildReport(startedAt, duration)
	if result.FailedScenarios == 0 && failures > 0 {
		result.FailedScenarios = failures
		result.ErrorRate = ratio(result.FailedScenarios, result.TotalScenarios)
	}

	printReport(result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}

	if result.FailedScenarios > 0 {
		os.Exit(1)
	}
}

// prepareFixture регистрирует пользователя и заводит товар с запасом,
// достаточным для всего прогона.
func prepareFixture(conn grpc.ClientConnInterface, cfg config, runID string) (fixture, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	identityClient := commercev1.NewIdentityServiceClient(conn)
	registerResp, err := identityClient.Register(ctx, &commercev1.RegisterRequest{
		Username: fmt.Sprintf("%s-%s", cfg.userTag, runID),
		Email:    fmt.Sprintf("%s-%s@loadtest.local", cfg.userTag, runID),
		Password: fmt.Sprintf("load-%s", runID),
	})
	if err != nil {
		return fixture{}, fmt.Errorf("register user: %w", err)
	}
	if !registerResp.GetSuccess() {
		return fixture{}, fmt.Errorf("register user rejected: %s", registerResp.GetMessage())
	}

	stock := cfg.stock
	if stock == 0 {
		stock = scenarioBudget(cfg) * int(cfg.qty)
	}

	catalogClient := commercev1.NewCatalogServiceClient(conn)
	productResp, err := catalogClient.AddProduct(ctx, &commercev1.AddProductRequest{
		Name:          fmt.Sprintf("Load Widget %s", runID),
		Description:   "generated for load testing",
		PriceMinor:    cfg.priceMinor,
		StockQuantity: int32(stock),
		Category:      "loadtest",
	})
	if err != nil {
		return fixture{}, fmt.Errorf("add product: %w", err)
	}
	if !productResp.GetSuccess() {
		return fixture{}, fmt.Errorf("add product rejected: %s", productResp.GetMessage())
	}

	return fixture{
		userID:    registerResp.GetUserId(),
		productID: productResp.GetProductId(),
	}, nil
}

// scenarioBudget оценивает число сценариев прогона для размера склада.
func scenarioBudget(cfg config) int {
	if cfg.duration <= 0 || cfg.totalSet {
		return cfg.total
	}
	// В duration-режиме без явного total склад берётся с большим запасом.
	return 1_000_000
}

func dispatchJobs(jobs chan<- int, cfg config) {
	defer close(jobs)

	if cfg.duration <= 0 {
		for i := 0; i < cfg.total; i++ {
			jobs <- i
		}
		return
	}

	timer := time.NewTimer(cfg.duration)
	defer timer.Stop()

	for i := 0; ; i++ {
		if cfg.totalSet && i >= cfg.total {
			return
		}

		select {
		case <-timer.C:
			return
		case jobs <- i:
		}
	}
}

func runScenario(
	client commercev1.OrderServiceClient,
	cfg config,
	fx fixture,
	index int,
	runID string,
	col *collector,
) error {
	scenarioStart := time.Now()
	scenarioCode := codes.OK
	scenarioRejected := false
	defer func() {
		col.record("scenario", time.Since(scenarioStart), scenarioCode, scenarioRejected)
	}()

	clientKey := clientKeyFor(cfg, index)

	createReq := &commercev1.CreateOrderRequest{
		UserId:          fx.userID,
		ShippingAddress: fmt.Sprintf("%d Load St", index),
		Items: []*commercev1.CreateOrderItem{
			{
				ProductId: fx.productID,
				Quantity:  cfg.qty,
			},
		},
	}

	createKey := fmt.Sprintf("lt-create-%s-%d", runID, index)
	orderResp, err := callCreateOrder(client, cfg.timeout, createReq, createKey, clientKey, col)
	if err != nil {
		scenarioCode = grpcCode(err)
		return err
	}
	if !orderResp.GetSuccess() {
		scenarioRejected = true
		return fmt.Errorf("create order rejected: %s", orderResp.GetMessage())
	}
	orderID := orderResp.GetOrderId()
	if orderID == "" {
		scenarioCode = codes.Internal
		return errors.New("create response returned empty order id")
	}

	if cfg.verify {
		getResp, getErr := callGetOrder(client, cfg.timeout, orderID, clientKey, col)
		if getErr != nil {
			scenarioCode = grpcCode(getErr)
			return getErr
		}
		if !getResp.GetSuccess() {
			scenarioRejected = true
			return fmt.Errorf("read-back rejected: %s", getResp.GetMessage())
		}
		if getResp.GetOrder().GetOrderId() != orderID {
			scenarioCode = codes.Internal
			return fmt.Errorf("read-back returned order %q, created %q", getResp.GetOrder().GetOrderId(), orderID)
		}
	}

	if cfg.mode == modeCreateCancel && shouldCancelScenario(index, cfg.cancelRate) {
		cancelKey := fmt.Sprintf("lt-cancel-%s-%d", runID, index)
		cancelResp, cancelErr := callCancelOrder(client, cfg.timeout, orderID, fx.userID, cancelKey, clientKey, col)
		if cancelErr != nil {
			scenarioCode = grpcCode(cancelErr)
			return cancelErr
		}
		if !cancelResp.GetSuccess() {
			scenarioRejected = true
			return fmt.Errorf("cancel order rejected: %s", cancelResp.GetMessage())
		}
	}

	return nil
}

// clientKeyFor распределяет сценарии между синтетическими клиентами,
// чтобы наблюдать срабатывание лимита по каждому окну отдельно.
func clientKeyFor(cfg config, index int) string {
	if cfg.mode != modeRateLimit || cfg.clientKeys <= 0 {
		return ""
	}
	return fmt.Sprintf("lt-client-%d", index%cfg.clientKeys)
}

func callCreateOrder(
	client commercev1.OrderServiceClient,
	timeout time.Duration,
	req *commercev1.CreateOrderRequest,
	key, clientKey string,
	col *collector,
) (*commercev1.CreateOrderResponse, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, idempotencyHeader, key)
	if clientKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, clientKeyHeader, clientKey)
	}

	resp, err := client.CreateOrder(ctx, req)
	col.record("CreateOrder", time.Since(start), grpcCode(err), err == nil && !resp.GetSuccess())
	return resp, err
}

func callCancelOrder(
	client commercev1.OrderServiceClient,
	timeout time.Duration,
	orderID, userID, key, clientKey string,
	col *collector,
) (*commercev1.CancelOrderResponse, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, idempotencyHeader, key)
	if clientKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, clientKeyHeader, clientKey)
	}

	resp, err := client.CancelOrder(ctx, &commercev1.CancelOrderRequest{
		OrderId: orderID,
		UserId:  userID,
	})
	col.record("CancelOrder", time.Since(start), grpcCode(err), err == nil && !resp.GetSuccess())
	return resp, err
}

func callGetOrder(
	client commercev1.OrderServiceClient,
	timeout time.Duration,
	orderID, clientKey string,
	col *collector,
) (*commercev1.GetOrderResponse, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if clientKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, clientKeyHeader, clientKey)
	}

	resp, err := client.GetOrder(ctx, &commercev1.GetOrderRequest{OrderId: orderID})
	col.record("GetOrder", time.Since(start), grpcCode(err), err == nil && !resp.GetSuccess())
	return resp, err
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}

func shouldCancelScenario(index, cancelRate int) bool {
	if cancelRate <= 0 {
		return false
	}
	if cancelRate >= 100 {
		return true
	}
	return index%100 < cancelRate
}

func writeJSONReport(path string, result report) error {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return errors.New("output path must point to a file")
	}
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path must be inside current directory: %s", path)
	}

	// #nosec G304 -- path is an explicit CLI output parameter for local load-test reports.
	file, err := os.Create(cleanPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printReport(result report, cfg config) {
	fmt.Println("Load test summary")
	fmt.Printf("mode=%s run=%s total=%d success=%d failed=%d error_rate=%.4f\n",
		cfg.mode,
		runTarget(cfg),
		result.TotalScenarios,
		result.SuccessScenarios,
		result.FailedScenarios,
		result.ErrorRate,
	)
	fmt.Printf("duration=%.2fs rps=%.2f\n", result.DurationSeconds, result.RPS)
	fmt.Printf("scenario latency ms: min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		result.ScenarioLatencyMs.Min,
		result.ScenarioLatencyMs.Avg,
		result.ScenarioLatencyMs.P50,
		result.ScenarioLatencyMs.P95,
		result.ScenarioLatencyMs.P99,
		result.ScenarioLatencyMs.Max,
	)

	methodNames := make([]string, 0, len(result.Methods))
	for name := range result.Methods {
		if name == "scenario" {
			continue
		}
		methodNames = append(methodNames, name)
	}
	sort.Strings(methodNames)
	for _, name := range methodNames {
		stats := result.Methods[name]
		fmt.Printf(
			"%s: calls=%d success=%d failed=%d rejected=%d error_rate=%.4f p95=%.2fms\n",
			name,
			stats.Calls,
			stats.Success,
			stats.Failed,
			stats.Rejected,
			stats.ErrorRate,
			stats.LatencyMs.P95,
		)
	}
}

func runTarget(cfg config) string {
	if cfg.duration <= 0 {
		return fmt.Sprintf("count:%d", cfg.total)
	}
	if cfg.totalSet {
		return fmt.Sprintf("duration:%s,max-total:%d", cfg.duration, cfg.total)
	}
	return fmt.Sprintf("duration:%s", cfg.duration)
}

func buildLatencySummary(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}

	return latencySummary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: sum / float64(len(sorted)),
		P50: percentile(sorted, 50),
		P95: percentile(sorted, 95),
		P99: percentile(sorted, 99),
	}
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := (p / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	weight := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}

func ratio(failed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(failed) / float64(total)
}
