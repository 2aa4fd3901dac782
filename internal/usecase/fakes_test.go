package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/mkraev/fintrack-ledger-service/internal/domain"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/kafka"
	"github.com/mkraev/fintrack-ledger-service/internal/infrastructure/logger"
	ratedto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/rate"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// fakeRateStore keeps rate rows in a map keyed by "FROM/TO".
type fakeRateStore struct {
	rows        map[string]*domain.ExchangeRate
	upserts     []*domain.ExchangeRate
	increments  map[string]int
	markedStale int64
	staleCount  int64

	lookupErr error
	upsertErr error
}

func newFakeRateStore() *fakeRateStore {
	return &fakeRateStore{
		rows:       make(map[string]*domain.ExchangeRate),
		increments: make(map[string]int),
	}
}

func pairKey(from, to string) string {
	return fmt.Sprintf("%s/%s", from, to)
}

func (s *fakeRateStore) put(rate *domain.ExchangeRate) {
	s.rows[pairKey(rate.FromCurrency, rate.ToCurrency)] = rate
}

func (s *fakeRateStore) Lookup(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	row, ok := s.rows[pairKey(from, to)]
	if !ok {
		return nil, domain.ErrRateNotFound
	}
	copied := *row
	return &copied, nil
}

func (s *fakeRateStore) Upsert(ctx context.Context, rate *domain.ExchangeRate) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	copied := *rate
	s.rows[pairKey(rate.FromCurrency, rate.ToCurrency)] = &copied
	s.upserts = append(s.upserts, &copied)
	return nil
}

func (s *fakeRateStore) MarkExpiredStale(ctx context.Context, now time.Time) (int64, error) {
	var marked int64
	for _, row := range s.rows {
		if !row.IsStale && !row.ExpiresAt.After(now) {
			row.IsStale = true
			marked++
		}
	}
	s.markedStale += marked
	return marked, nil
}

func (s *fakeRateStore) IncrementErrorCount(ctx context.Context, from, to string) error {
	s.increments[pairKey(from, to)]++
	if row, ok := s.rows[pairKey(from, to)]; ok {
		row.ErrorCount++
	}
	return nil
}

func (s *fakeRateStore) ListPairs(ctx context.Context) ([]domain.CurrencyPair, error) {
	pairs := make([]domain.CurrencyPair, 0, len(s.rows))
	for _, row := range s.rows {
		pairs = append(pairs, domain.CurrencyPair{From: row.FromCurrency, To: row.ToCurrency})
	}
	return pairs, nil
}

func (s *fakeRateStore) CountStale(ctx context.Context) (int64, error) {
	return s.staleCount, nil
}

// fakeRateProvider serves canned responses per base currency.
type fakeRateProvider struct {
	base      string
	responses map[string]map[string]float64
	errs      map[string]error
	calls     []string
}

func newFakeRateProvider(base string) *fakeRateProvider {
	return &fakeRateProvider{
		base:      base,
		responses: make(map[string]map[string]float64),
		errs:      make(map[string]error),
	}
}

func (p *fakeRateProvider) FetchAll(ctx context.Context, baseCurrency string) (map[string]float64, error) {
	p.calls = append(p.calls, baseCurrency)
	if err, ok := p.errs[baseCurrency]; ok {
		return nil, err
	}
	rates, ok := p.responses[baseCurrency]
	if !ok {
		return nil, domain.ErrFetchFailed
	}
	return rates, nil
}

func (p *fakeRateProvider) BaseCurrency() string {
	return p.base
}

func (p *fakeRateProvider) GetName() string {
	return "fake"
}

// fakeTransactionRepo stores transactions in a map and mimics the mutual
// linking the real pair insert performs.
type fakeTransactionRepo struct {
	transactions map[string]*domain.Transaction
	links        []*domain.TransferLink

	createCalls int
	deleteCalls int

	lastPage  int64
	lastLimit int64
	transfers []*domain.Transaction
	total     int64

	typeSums   []domain.TypeSum
	spending   float64
	methodSums []domain.PaymentMethodSum
	nativeSum  float64
	lastFilter domain.SpendingFilter

	createErr error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[string]*domain.Transaction)}
}

func (r *fakeTransactionRepo) put(tx *domain.Transaction) {
	r.transactions[tx.ID] = tx
}

func (r *fakeTransactionRepo) CreateTransferPair(ctx context.Context, source, dest *domain.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.createCalls++
	storedSource := *source
	storedDest := *dest
	storedSource.LinkedTransactionID = &storedDest.ID
	storedDest.LinkedTransactionID = &storedSource.ID
	r.transactions[storedSource.ID] = &storedSource
	r.transactions[storedDest.ID] = &storedDest
	return nil
}

func (r *fakeTransactionRepo) DeleteTransferPair(ctx context.Context, firstID, secondID string) error {
	r.deleteCalls++
	delete(r.transactions, firstID)
	delete(r.transactions, secondID)
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	tx, ok := r.transactions[transactionID]
	if !ok {
		return nil, domain.ErrTransferNotFound
	}
	copied := *tx
	return &copied, nil
}

func (r *fakeTransactionRepo) GetTransfersByOwnerID(ctx context.Context, ownerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	r.lastPage = page
	r.lastLimit = limit
	return r.transfers, r.total, nil
}

func (r *fakeTransactionRepo) FindTransferLinks(ctx context.Context, ownerID string) ([]*domain.TransferLink, error) {
	return r.links, nil
}

func (r *fakeTransactionRepo) SumAmountsByType(ctx context.Context, ownerID string) ([]domain.TypeSum, error) {
	return r.typeSums, nil
}

func (r *fakeTransactionRepo) SumSpending(ctx context.Context, filter domain.SpendingFilter) (float64, error) {
	r.lastFilter = filter
	return r.spending, nil
}

func (r *fakeTransactionRepo) SumSpendingByPaymentMethod(ctx context.Context, filter domain.SpendingFilter) ([]domain.PaymentMethodSum, error) {
	r.lastFilter = filter
	return r.methodSums, nil
}

func (r *fakeTransactionRepo) SumNativeByPaymentMethod(ctx context.Context, paymentMethodID string) (float64, error) {
	return r.nativeSum, nil
}

type fakePaymentMethodRepo struct {
	methods    map[string]*domain.PaymentMethod
	currencies []string
}

func newFakePaymentMethodRepo(methods ...*domain.PaymentMethod) *fakePaymentMethodRepo {
	repo := &fakePaymentMethodRepo{methods: make(map[string]*domain.PaymentMethod)}
	for _, method := range methods {
		repo.methods[method.ID] = method
	}
	return repo
}

func (r *fakePaymentMethodRepo) CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) error {
	r.methods[method.ID] = method
	return nil
}

func (r *fakePaymentMethodRepo) GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	method, ok := r.methods[methodID]
	if !ok {
		return nil, domain.ErrPaymentMethodNotFound
	}
	return method, nil
}

func (r *fakePaymentMethodRepo) GetPaymentMethodsByOwnerID(ctx context.Context, ownerID string) ([]*domain.PaymentMethod, error) {
	var result []*domain.PaymentMethod
	for _, method := range r.methods {
		if method.OwnerID == ownerID {
			result = append(result, method)
		}
	}
	return result, nil
}

func (r *fakePaymentMethodRepo) DistinctActiveCurrencies(ctx context.Context) ([]string, error) {
	return r.currencies, nil
}

type fakeBudgetRepo struct {
	budgets map[string]*domain.Budget
}

func newFakeBudgetRepo(budgets ...*domain.Budget) *fakeBudgetRepo {
	repo := &fakeBudgetRepo{budgets: make(map[string]*domain.Budget)}
	for _, budget := range budgets {
		repo.budgets[budget.ID] = budget
	}
	return repo
}

func (r *fakeBudgetRepo) CreateBudget(ctx context.Context, budget *domain.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, ok := r.budgets[budgetID]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	return budget, nil
}

func (r *fakeBudgetRepo) GetBudgetsByOwnerID(ctx context.Context, ownerID string) ([]*domain.Budget, error) {
	var result []*domain.Budget
	for _, budget := range r.budgets {
		if budget.OwnerID == ownerID {
			result = append(result, budget)
		}
	}
	return result, nil
}

// fakeTransferPublisher pushes events into a buffered channel so tests can
// wait on the async publish.
type fakeTransferPublisher struct {
	events chan kafka.TransferEvent
}

func newFakeTransferPublisher() *fakeTransferPublisher {
	return &fakeTransferPublisher{events: make(chan kafka.TransferEvent, 4)}
}

func (p *fakeTransferPublisher) PublishTransferEvent(event kafka.TransferEvent) error {
	p.events <- event
	return nil
}

type fakeEventLogger struct {
	created []logger.TransferCreatedEvent
	deleted []logger.TransferDeletedEvent
	failed  []logger.TransferFailedEvent
}

func (l *fakeEventLogger) LogTransferCreated(ctx context.Context, event logger.TransferCreatedEvent) error {
	l.created = append(l.created, event)
	return nil
}

func (l *fakeEventLogger) LogTransferDeleted(ctx context.Context, event logger.TransferDeletedEvent) error {
	l.deleted = append(l.deleted, event)
	return nil
}

func (l *fakeEventLogger) LogTransferFailed(ctx context.Context, event logger.TransferFailedEvent) error {
	l.failed = append(l.failed, event)
	return nil
}

// fakeRateResolver returns one canned quote for every pair.
type fakeRateResolver struct {
	quote    *domain.RateQuote
	err      error
	lastFrom string
	lastTo   string
}

func (f *fakeRateResolver) GetRate(ctx context.Context, from, to string, date time.Time) (*domain.RateQuote, error) {
	f.lastFrom = from
	f.lastTo = to
	if f.err != nil {
		return nil, f.err
	}
	return f.quote, nil
}

func (f *fakeRateResolver) RefreshAll(ctx context.Context, currencies []string) (*ratedto.RefreshReport, error) {
	return &ratedto.RefreshReport{}, nil
}

func (f *fakeRateResolver) MarkStaleRates(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeRateResolver) SetManualRate(ctx context.Context, from, to string, rate float64) error {
	return nil
}
